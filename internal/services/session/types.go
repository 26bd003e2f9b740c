package session

import (
	"time"

	"github.com/KirkDiggler/kiroku/internal/common/uuid"
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	UserRepo    userRepo.Repository

	// Utility dependencies
	Clock         clockwork.Clock
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger

	// DefaultTimezone is used when neither the input nor the user names one
	DefaultTimezone string
}

// StartLiveSessionInput contains parameters for starting a live session
type StartLiveSessionInput struct {
	UserID string `validate:"required"`

	// Timezone overrides the user's selected timezone
	Timezone string `validate:"omitempty,timezone"`
}

// StartLiveSessionOutput contains the running session
type StartLiveSessionOutput struct {
	Session *models.DrinkingSession

	// AlreadyRunning is true when an existing session was returned
	AlreadyRunning bool
}

// AddDrinksInput contains parameters for adding drinks
type AddDrinksInput struct {
	UserID string          `validate:"required"`
	Drink  models.DrinkKey `validate:"required"`
	Count  int
}

// RemoveDrinksInput contains parameters for removing drinks
type RemoveDrinksInput struct {
	UserID string          `validate:"required"`
	Drink  models.DrinkKey `validate:"required"`
	Count  int
}

// SetBlackoutInput contains parameters for flagging a blackout.
// An empty SessionID targets the ongoing session.
type SetBlackoutInput struct {
	UserID    string `validate:"required"`
	SessionID string
	Blackout  bool
}

// SetNoteInput contains parameters for setting a note.
// An empty SessionID targets the ongoing session.
type SetNoteInput struct {
	UserID    string `validate:"required"`
	SessionID string
	Note      string `validate:"max=1000"`
}

// EndSessionInput contains parameters for ending the ongoing session
type EndSessionInput struct {
	UserID string `validate:"required"`
}

// EndSessionOutput contains the ended session
type EndSessionOutput struct {
	Session *models.DrinkingSession

	// Discarded is true when the session had nothing in it and was removed
	Discarded bool
}

// LogSessionInput contains parameters for recording a past session
type LogSessionInput struct {
	UserID string `validate:"required"`

	// Date is the local day of the session in YYYY-MM-DD
	Date string `validate:"required,datetime=2006-01-02"`

	// Timezone overrides the user's selected timezone
	Timezone string `validate:"omitempty,timezone"`

	Drinks   models.Drinks
	Blackout bool
	Note     string `validate:"max=1000"`
}

// UpdateSessionInput contains parameters for editing a session
type UpdateSessionInput struct {
	UserID    string `validate:"required"`
	SessionID string `validate:"required"`
	Drinks    models.Drinks
	Blackout  bool
	Note      string `validate:"max=1000"`
}

// SessionOutput contains a session after a change
type SessionOutput struct {
	Session *models.DrinkingSession
	Units   float64
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	UserID    string `validate:"required"`
	SessionID string `validate:"required"`
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	UserID    string `validate:"required"`
	SessionID string `validate:"required"`
}

// SessionSummary is a session with its derived units and colour
type SessionSummary struct {
	Session  *models.DrinkingSession
	Units    float64
	ColorTag models.ColorTag
}

// GetDayOverviewInput contains parameters for a day overview
type GetDayOverviewInput struct {
	UserID string `validate:"required"`
	Date   string `validate:"required,datetime=2006-01-02"`
}

// GetDayOverviewOutput contains a day's sessions ordered by start time
type GetDayOverviewOutput struct {
	Date       string
	Sessions   []*SessionSummary
	TotalUnits float64
	ColorTag   models.ColorTag
}

// GetTrackingStartDateInput contains parameters for the tracking start lookup
type GetTrackingStartDateInput struct {
	UserID string `validate:"required"`
}

// GetTrackingStartDateOutput contains the tracking start, nil without sessions
type GetTrackingStartDateOutput struct {
	StartDate *time.Time
}

// FixTimezoneInput contains parameters for a timezone correction
type FixTimezoneInput struct {
	UserID string `validate:"required"`

	// OldTimezone is the zone the sessions were wrongly recorded in
	OldTimezone string `validate:"required,timezone"`

	// NewTimezone is the zone they should have been recorded in
	NewTimezone string `validate:"required,timezone"`
}

// FixTimezoneOutput reports how many sessions were corrected
type FixTimezoneOutput struct {
	FixedCount int
}
