package user

// UserError is a custom error type for user-related errors
type UserError string

// Error implements the error interface
func (e UserError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound       UserError = "user not found"
	ErrUserAlreadyExists  UserError = "user already registered"
	ErrInvalidTimezone    UserError = "invalid timezone"
	ErrInvalidNickname    UserError = "invalid nickname"
	ErrInvalidPreferences UserError = "invalid preferences"
	ErrInvalidNotice      UserError = "unknown notice"
	ErrInvalidInput       UserError = "invalid input"
	ErrNilConfig          UserError = "config cannot be nil"
	ErrNilUserRepo        UserError = "user repository cannot be nil"
	ErrNilClock           UserError = "clock cannot be nil"
)
