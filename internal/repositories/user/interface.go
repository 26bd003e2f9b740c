package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kiroku/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// CreateUser stores a new user, failing if the ID is taken
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// SaveUser replaces an existing user and keeps the nickname index current
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// FindByNicknameKey returns the IDs of users whose nickname cleans to the key
	FindByNicknameKey(ctx context.Context, input *FindByNicknameKeyInput) (*FindByNicknameKeyOutput, error)

	// GetPreferences retrieves a user's preferences
	GetPreferences(ctx context.Context, input *GetPreferencesInput) (*models.Preferences, error)

	// SavePreferences stores a user's preferences and publishes the change
	SavePreferences(ctx context.Context, input *SavePreferencesInput) error

	// SubscribePreferences streams every preferences change of a user
	SubscribePreferences(ctx context.Context, input *SubscribePreferencesInput) (*PreferencesSubscription, error)
}
