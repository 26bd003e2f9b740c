package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kiroku/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage maps a service error to a user-facing message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetSessionMessage returns a message confirming a session event
	GetSessionMessage(ctx context.Context, input *GetSessionMessageInput) (*GetSessionMessageOutput, error)
}
