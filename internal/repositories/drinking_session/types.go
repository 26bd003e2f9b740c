package drinking_session

import (
	"sync"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.DrinkingSession
}

// SaveSessionsInput contains parameters for saving a batch of sessions
type SaveSessionsInput struct {
	// UserID must own every session in the batch
	UserID   string
	Sessions []*models.DrinkingSession
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	UserID    string
	SessionID string
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	UserID    string
	SessionID string
}

// GetSessionsInRangeInput contains parameters for a time range query
type GetSessionsInRangeInput struct {
	UserID string

	// From is inclusive
	From time.Time

	// To is exclusive
	To time.Time
}

// GetAllSessionsInput contains parameters for retrieving all sessions
type GetAllSessionsInput struct {
	UserID string
}

// GetSessionsOutput holds sessions ordered by start time
type GetSessionsOutput struct {
	Sessions []*models.DrinkingSession
}

// GetEarliestSessionInput contains parameters for retrieving the first session
type GetEarliestSessionInput struct {
	UserID string
}

// GetOngoingSessionInput contains parameters for retrieving the running session
type GetOngoingSessionInput struct {
	UserID string
}

// SubscribeInput contains parameters for subscribing to session changes
type SubscribeInput struct {
	UserID string
}

// Subscription delivers session changes until closed
type Subscription struct {
	// Changes is closed once the subscription ends
	Changes <-chan *models.SessionChange

	closeOnce sync.Once
	closeFn   func()
}

// NewSubscription wraps a change channel and the function that stops it
func NewSubscription(changes <-chan *models.SessionChange, closeFn func()) *Subscription {
	return &Subscription{
		Changes: changes,
		closeFn: closeFn,
	}
}

// Close stops the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		if s.closeFn != nil {
			s.closeFn()
		}
	})
}
