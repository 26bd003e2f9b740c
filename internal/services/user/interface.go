package user

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kiroku/internal/services/user Service

import (
	"context"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// Service defines account, preference and notice operations
type Service interface {
	// Register creates an account
	Register(ctx context.Context, input *RegisterInput) (*models.User, error)

	// GetUser retrieves an account
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// UpdateProfile changes the display name and nickname
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*models.User, error)

	// UpdateTimezone changes the timezone selection
	UpdateTimezone(ctx context.Context, input *UpdateTimezoneInput) (*models.User, error)

	// GetPreferences returns the stored preferences or the defaults
	GetPreferences(ctx context.Context, input *GetPreferencesInput) (*models.Preferences, error)

	// UpdatePreferences validates and stores preferences
	UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*models.Preferences, error)

	// AgreeToTerms records that the user accepted the terms
	AgreeToTerms(ctx context.Context, input *AgreeToTermsInput) (*models.User, error)

	// DismissNotice hides a notice until the cooldown passes
	DismissNotice(ctx context.Context, input *DismissNoticeInput) error

	// ShouldShowNotice reports whether a notice is due
	ShouldShowNotice(ctx context.Context, input *ShouldShowNoticeInput) (bool, error)
}
