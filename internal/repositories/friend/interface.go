package friend

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kiroku/internal/repositories/friend Repository

import (
	"context"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// Repository defines the interface for friendship persistence
type Repository interface {
	// CreateRequest records a pending request on both users
	CreateRequest(ctx context.Context, input *CreateRequestInput) error

	// GetRequest retrieves the pending request between two users
	GetRequest(ctx context.Context, input *GetRequestInput) (*models.FriendRequest, error)

	// ListRequests retrieves all pending requests of a user
	ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error)

	// DeleteRequest removes a pending request from both users
	DeleteRequest(ctx context.Context, input *DeleteRequestInput) error

	// AddFriendship turns a pending request into a friendship
	AddFriendship(ctx context.Context, input *AddFriendshipInput) error

	// RemoveFriendship removes a friendship from both users
	RemoveFriendship(ctx context.Context, input *RemoveFriendshipInput) error

	// ListFriends retrieves the friend IDs of a user
	ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error)

	// AreFriends reports whether two users are friends
	AreFriends(ctx context.Context, input *AreFriendsInput) (bool, error)
}
