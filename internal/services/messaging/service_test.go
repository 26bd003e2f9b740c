package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/friend"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service {
	t.Helper()
	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	return svc
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"session not found", session.ErrSessionNotFound, CodeSessionNotFound},
		{"repository session not found", fmt.Errorf("load: %w", sessionRepo.ErrSessionNotFound), CodeSessionNotFound},
		{"wrapped timezone", fmt.Errorf("%w: Mars/Olympus", session.ErrInvalidTimezone), CodeInvalidTimezone},
		{"timezone fix", fmt.Errorf("%w: connection reset", session.ErrTimezoneFixFailed), CodeTimezoneFixFailed},
		{"calendar month", calendar.ErrInvalidMonth, CodeInvalidDate},
		{"user exists", user.ErrUserAlreadyExists, CodeAlreadyRegistered},
		{"friend self", friend.ErrCannotFriendSelf, CodeCannotFriendSelf},
		{"preferences", fmt.Errorf("%w: negative weight", user.ErrInvalidPreferences), CodeInvalidInput},
		{"deadline", context.DeadlineExceeded, CodeUnavailable},
		{"unknown", errors.New("disk on fire"), CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestEveryCodeHasMessages(t *testing.T) {
	for _, locale := range []Locale{LocaleEnglish, LocaleCzech} {
		for _, class := range classification {
			msg, ok := errorMessages[locale][class.code]
			assert.True(t, ok, "%s has no %s message", locale, class.code)
			assert.NotEmpty(t, msg.title)
			assert.NotEmpty(t, msg.variants)
		}
		assert.Contains(t, errorMessages[locale], CodeUnknown)
	}
}

func TestGetErrorMessage(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
		Err:    session.ErrNoOngoingSession,
		Locale: LocaleCzech,
	})
	require.NoError(t, err)
	assert.Equal(t, CodeNoOngoingSession, output.Code)
	assert.Equal(t, "Žádné probíhající sezení", output.Title)
	assert.Contains(t, errorMessages[LocaleCzech][CodeNoOngoingSession].variants, output.Message)

	output, err = svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{
		Err:    errors.New("boom"),
		Locale: "de",
	})
	require.NoError(t, err)
	assert.Equal(t, CodeUnknown, output.Code)
	assert.Equal(t, "Something went wrong", output.Title)

	_, err = svc.GetErrorMessage(context.Background(), &GetErrorMessageInput{})
	assert.Error(t, err)
}

func TestGetSessionMessage(t *testing.T) {
	svc := newTestService(t)

	output, err := svc.GetSessionMessage(context.Background(), &GetSessionMessageInput{
		Event: EventDrinksAdded,
		Units: 2,
		Count: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Logged", output.Title)
	assert.Equal(t, "Added 1. Total is 2.0 units.", output.Message)
	assert.Equal(t, ToneFunny, output.Tone)

	output, err = svc.GetSessionMessage(context.Background(), &GetSessionMessageInput{
		Event:  EventTimezoneFixed,
		Count:  3,
		Locale: LocaleCzech,
	})
	require.NoError(t, err)
	assert.Equal(t, "Opravených sezení: 3.", output.Message)
	assert.Equal(t, ToneNeutral, output.Tone)

	_, err = svc.GetSessionMessage(context.Background(), &GetSessionMessageInput{Event: "exploded"})
	assert.Error(t, err)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleCzech, ParseLocale("cs"))
	assert.Equal(t, LocaleCzech, ParseLocale("cs-CZ"))
	assert.Equal(t, LocaleEnglish, ParseLocale("en-US"))
	assert.Equal(t, LocaleEnglish, ParseLocale(""))
}
