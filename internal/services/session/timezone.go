package session

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// FixTimezoneSessions reinterprets sessions recorded under oldTz as if their
// wall-clock times had been entered in newTz. Sessions recorded in oldTz, or
// without any timezone, get new start and end instants and newTz as their
// timezone. Every other session is returned unchanged. The input is never
// modified; the output has one entry per input session in the same order.
func FixTimezoneSessions(sessions []*models.DrinkingSession, oldTz, newTz string) ([]*models.DrinkingSession, error) {
	oldLoc, err := time.LoadLocation(oldTz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, oldTz)
	}
	newLoc, err := time.LoadLocation(newTz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, newTz)
	}

	out := make([]*models.DrinkingSession, 0, len(sessions))
	for _, session := range sessions {
		fixed := session.Clone()
		if oldTz == newTz || !needsFix(session, oldTz) {
			out = append(out, fixed)
			continue
		}

		fixed.StartTime = reinterpret(session.StartTime, oldLoc, newLoc)
		if session.EndTime != nil {
			end := reinterpret(*session.EndTime, oldLoc, newLoc)
			fixed.EndTime = &end
		}
		fixed.Timezone = newTz
		out = append(out, fixed)
	}

	return out, nil
}

func needsFix(session *models.DrinkingSession, oldTz string) bool {
	return session != nil && (session.Timezone == "" || session.Timezone == oldTz)
}

// reinterpret keeps the wall clock of t as seen in from and places it in to
func reinterpret(t time.Time, from, to *time.Location) time.Time {
	local := t.In(from)
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), to)
}
