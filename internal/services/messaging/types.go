package messaging

import (
	"math/rand"
)

// Locale selects the language of a message
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleCzech   Locale = "cs"
)

// ParseLocale maps a client locale such as "cs-CZ" or "en-US" to a supported
// Locale, defaulting to English
func ParseLocale(raw string) Locale {
	if len(raw) >= 2 && (raw[:2] == "cs" || raw[:2] == "CS") {
		return LocaleCzech
	}
	return LocaleEnglish
}

// ErrorCode groups errors that share a user-facing message
type ErrorCode string

const (
	CodeSessionNotFound   ErrorCode = "session_not_found"
	CodeNoOngoingSession  ErrorCode = "no_ongoing_session"
	CodeInvalidDrink      ErrorCode = "invalid_drink"
	CodeInvalidTimezone   ErrorCode = "invalid_timezone"
	CodeInvalidDate       ErrorCode = "invalid_date"
	CodeDateInFuture      ErrorCode = "date_in_future"
	CodeTimezoneFixFailed ErrorCode = "timezone_fix_failed"
	CodeUserNotFound      ErrorCode = "user_not_found"
	CodeAlreadyRegistered ErrorCode = "already_registered"
	CodeCalendarNotOpen   ErrorCode = "calendar_not_open"
	CodeCannotFriendSelf  ErrorCode = "cannot_friend_self"
	CodeAlreadyFriends    ErrorCode = "already_friends"
	CodeRequestSent       ErrorCode = "request_already_sent"
	CodeRequestNotFound   ErrorCode = "request_not_found"
	CodeNotFriends        ErrorCode = "not_friends"
	CodeInvalidInput      ErrorCode = "invalid_input"
	CodeUnavailable       ErrorCode = "unavailable"
	CodeUnknown           ErrorCode = "unknown"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// SessionEvent is something that happened to a drinking session
type SessionEvent string

const (
	EventSessionStarted   SessionEvent = "started"
	EventSessionResumed   SessionEvent = "resumed"
	EventDrinksAdded      SessionEvent = "drinks_added"
	EventDrinksRemoved    SessionEvent = "drinks_removed"
	EventSessionEnded     SessionEvent = "ended"
	EventSessionDiscarded SessionEvent = "discarded"
	EventBlackout         SessionEvent = "blackout"
	EventSessionLogged    SessionEvent = "logged"
	EventTimezoneFixed    SessionEvent = "timezone_fixed"
)

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error

	// Locale is the language of the message
	Locale Locale
}

// GetErrorMessageOutput is a dismissible error message
type GetErrorMessageOutput struct {
	Code    ErrorCode
	Title   string
	Message string
}

// GetSessionMessageInput contains parameters for a session event message
type GetSessionMessageInput struct {
	Event SessionEvent

	// Units is the session total after the event
	Units float64

	// Count is the number of drinks or sessions the event touched
	Count int

	Locale Locale

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetSessionMessageOutput contains the result of getting a session message
type GetSessionMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks among message variants, seeded from the clock when nil
	Rand *rand.Rand
}
