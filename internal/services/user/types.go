package user

import (
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config holds configuration for the user service
type Config struct {
	UserRepo userRepo.Repository
	Clock    clockwork.Clock
	Logger   *zap.Logger

	// DefaultTimezone is assigned to users who register without one
	DefaultTimezone string

	// NoticeCooldown is how long a dismissed notice stays hidden
	NoticeCooldown time.Duration
}

// RegisterInput contains parameters for registering a user
type RegisterInput struct {
	UserID      string `validate:"required"`
	DisplayName string `validate:"required,max=64"`
	Nickname    string `validate:"omitempty,max=64"`
	Timezone    string `validate:"omitempty,timezone"`
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string `validate:"required"`
}

// UpdateProfileInput contains parameters for a profile change
type UpdateProfileInput struct {
	UserID      string `validate:"required"`
	DisplayName string `validate:"omitempty,max=64"`
	Nickname    string `validate:"omitempty,max=64"`
}

// UpdateTimezoneInput contains parameters for a timezone change
type UpdateTimezoneInput struct {
	UserID    string `validate:"required"`
	Timezone  string `validate:"required,timezone"`
	Automatic bool
}

// GetPreferencesInput contains parameters for retrieving preferences
type GetPreferencesInput struct {
	UserID string `validate:"required"`
}

// UpdatePreferencesInput contains parameters for storing preferences
type UpdatePreferencesInput struct {
	UserID      string `validate:"required"`
	Preferences *models.Preferences
}

// AgreeToTermsInput contains parameters for accepting the terms
type AgreeToTermsInput struct {
	UserID string `validate:"required"`
}

// DismissNoticeInput contains parameters for dismissing a notice
type DismissNoticeInput struct {
	UserID string        `validate:"required"`
	Notice models.Notice `validate:"required"`
}

// ShouldShowNoticeInput contains parameters for a notice check
type ShouldShowNoticeInput struct {
	UserID string        `validate:"required"`
	Notice models.Notice `validate:"required"`
}
