package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound   SessionError = "drinking session not found"
	ErrNoOngoingSession  SessionError = "no ongoing drinking session"
	ErrInvalidDrink      SessionError = "unknown drink type"
	ErrInvalidCount      SessionError = "drink count must be positive"
	ErrInvalidTimezone   SessionError = "invalid timezone"
	ErrInvalidDate       SessionError = "invalid date"
	ErrInvalidInput      SessionError = "invalid input"
	ErrDateInFuture      SessionError = "date cannot be in the future"
	ErrTimezoneFixFailed SessionError = "failed to save corrected sessions"
	ErrNilConfig         SessionError = "config cannot be nil"
	ErrNilSessionRepo    SessionError = "session repository cannot be nil"
	ErrNilUserRepo       SessionError = "user repository cannot be nil"
	ErrNilClock          SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator  SessionError = "UUID generator cannot be nil"
)
