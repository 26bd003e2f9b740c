package user

import (
	"sync"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// CreateUserInput contains parameters for creating a user
type CreateUserInput struct {
	User *models.User
}

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// FindByNicknameKeyInput contains parameters for a nickname lookup
type FindByNicknameKeyInput struct {
	NicknameKey string
}

// FindByNicknameKeyOutput holds the matching user IDs
type FindByNicknameKeyOutput struct {
	UserIDs []string
}

// GetPreferencesInput contains parameters for retrieving preferences
type GetPreferencesInput struct {
	UserID string
}

// SavePreferencesInput contains parameters for saving preferences
type SavePreferencesInput struct {
	UserID      string
	Preferences *models.Preferences
}

// SubscribePreferencesInput contains parameters for a preferences subscription
type SubscribePreferencesInput struct {
	UserID string
}

// PreferencesSubscription delivers preference changes until closed
type PreferencesSubscription struct {
	// Changes is closed once the subscription ends
	Changes <-chan *models.Preferences

	closeOnce sync.Once
	closeFn   func()
}

// NewPreferencesSubscription wraps a change channel and its stop function
func NewPreferencesSubscription(changes <-chan *models.Preferences, closeFn func()) *PreferencesSubscription {
	return &PreferencesSubscription{
		Changes: changes,
		closeFn: closeFn,
	}
}

// Close stops the subscription. Safe to call more than once.
func (s *PreferencesSubscription) Close() {
	s.closeOnce.Do(func() {
		if s.closeFn != nil {
			s.closeFn()
		}
	})
}
