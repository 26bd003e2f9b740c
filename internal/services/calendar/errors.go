package calendar

// CalendarError is a custom error type for calendar-related errors
type CalendarError string

// Error implements the error interface
func (e CalendarError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound    CalendarError = "user not found"
	ErrInvalidMonth    CalendarError = "invalid month"
	ErrInvalidInput    CalendarError = "invalid input"
	ErrCalendarNotOpen CalendarError = "calendar is not open"
	ErrServiceClosed   CalendarError = "calendar service is closed"
	ErrNilConfig       CalendarError = "config cannot be nil"
	ErrNilSessionRepo  CalendarError = "session repository cannot be nil"
	ErrNilUserRepo     CalendarError = "user repository cannot be nil"
	ErrNilClock        CalendarError = "clock cannot be nil"
	ErrNilLoaderUser   CalendarError = "loader user cannot be nil"
)
