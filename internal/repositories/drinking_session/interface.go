package drinking_session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kiroku/internal/repositories/drinking_session Repository

import (
	"context"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// Repository defines the interface for drinking session persistence
type Repository interface {
	// SaveSession creates or replaces a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// SaveSessions writes a batch of sessions for one user, all or nothing
	SaveSessions(ctx context.Context, input *SaveSessionsInput) error

	// GetSession retrieves a single session
	GetSession(ctx context.Context, input *GetSessionInput) (*models.DrinkingSession, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetSessionsInRange retrieves the sessions starting in [From, To)
	GetSessionsInRange(ctx context.Context, input *GetSessionsInRangeInput) (*GetSessionsOutput, error)

	// GetAllSessions retrieves every session of a user
	GetAllSessions(ctx context.Context, input *GetAllSessionsInput) (*GetSessionsOutput, error)

	// GetEarliestSession retrieves the first session a user ever recorded
	GetEarliestSession(ctx context.Context, input *GetEarliestSessionInput) (*models.DrinkingSession, error)

	// GetOngoingSession retrieves the user's running live session
	GetOngoingSession(ctx context.Context, input *GetOngoingSessionInput) (*models.DrinkingSession, error)

	// Subscribe streams every change to a user's sessions
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}
