package messaging

import (
	"context"
	"errors"

	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	friendRepo "github.com/KirkDiggler/kiroku/internal/repositories/friend"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/friend"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
)

// classification is checked in order, so wrapped errors resolve to the most
// specific code first
var classification = []struct {
	code ErrorCode
	errs []error
}{
	{CodeTimezoneFixFailed, []error{session.ErrTimezoneFixFailed}},
	{CodeSessionNotFound, []error{session.ErrSessionNotFound, sessionRepo.ErrSessionNotFound}},
	{CodeNoOngoingSession, []error{session.ErrNoOngoingSession}},
	{CodeInvalidDrink, []error{session.ErrInvalidDrink, session.ErrInvalidCount}},
	{CodeInvalidTimezone, []error{session.ErrInvalidTimezone, user.ErrInvalidTimezone}},
	{CodeInvalidDate, []error{session.ErrInvalidDate, calendar.ErrInvalidMonth}},
	{CodeDateInFuture, []error{session.ErrDateInFuture}},
	{CodeUserNotFound, []error{
		calendar.ErrUserNotFound,
		user.ErrUserNotFound,
		friend.ErrUserNotFound,
		userRepo.ErrUserNotFound,
	}},
	{CodeAlreadyRegistered, []error{user.ErrUserAlreadyExists, userRepo.ErrUserExists}},
	{CodeCalendarNotOpen, []error{calendar.ErrCalendarNotOpen}},
	{CodeCannotFriendSelf, []error{friend.ErrCannotFriendSelf}},
	{CodeAlreadyFriends, []error{friend.ErrAlreadyFriends}},
	{CodeRequestSent, []error{friend.ErrRequestAlreadySent}},
	{CodeRequestNotFound, []error{friend.ErrRequestNotFound, friendRepo.ErrRequestNotFound}},
	{CodeNotFriends, []error{friend.ErrNotFriends}},
	{CodeInvalidInput, []error{
		session.ErrInvalidInput,
		calendar.ErrInvalidInput,
		user.ErrInvalidInput,
		user.ErrInvalidNickname,
		user.ErrInvalidPreferences,
		user.ErrInvalidNotice,
		friend.ErrInvalidInput,
	}},
	{CodeUnavailable, []error{calendar.ErrServiceClosed, context.DeadlineExceeded, context.Canceled}},
}

// Classify returns the code of the first known error found in err's chain
func Classify(err error) ErrorCode {
	if err == nil {
		return ""
	}
	for _, class := range classification {
		for _, target := range class.errs {
			if errors.Is(err, target) {
				return class.code
			}
		}
	}
	return CodeUnknown
}
