package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kiroku/internal/services/session Service

import (
	"context"
)

// Service defines the drinking session operations
type Service interface {
	// StartLiveSession starts a live session, or returns the one already running
	StartLiveSession(ctx context.Context, input *StartLiveSessionInput) (*StartLiveSessionOutput, error)

	// AddDrinks adds drinks to the ongoing session
	AddDrinks(ctx context.Context, input *AddDrinksInput) (*SessionOutput, error)

	// RemoveDrinks removes drinks from the ongoing session
	RemoveDrinks(ctx context.Context, input *RemoveDrinksInput) (*SessionOutput, error)

	// SetBlackout marks or unmarks a session as a blackout
	SetBlackout(ctx context.Context, input *SetBlackoutInput) (*SessionOutput, error)

	// SetNote replaces the note of a session
	SetNote(ctx context.Context, input *SetNoteInput) (*SessionOutput, error)

	// EndSession ends the ongoing session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// LogSession records a session after the fact
	LogSession(ctx context.Context, input *LogSessionInput) (*SessionOutput, error)

	// UpdateSession replaces the drinks and flags of an existing session
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*SessionOutput, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetSession retrieves one session with its units and colour
	GetSession(ctx context.Context, input *GetSessionInput) (*SessionSummary, error)

	// GetDayOverview lists the sessions of one calendar day
	GetDayOverview(ctx context.Context, input *GetDayOverviewInput) (*GetDayOverviewOutput, error)

	// GetTrackingStartDate returns the day of the user's first session
	GetTrackingStartDate(ctx context.Context, input *GetTrackingStartDateInput) (*GetTrackingStartDateOutput, error)

	// FixTimezone reinterprets sessions recorded in a wrong timezone
	FixTimezone(ctx context.Context, input *FixTimezoneInput) (*FixTimezoneOutput, error)
}
