package friend

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kiroku/internal/services/friend Service

import (
	"context"
)

// Service defines friend list operations
type Service interface {
	// SendRequest sends a friend request, accepting a pending one from the other side
	SendRequest(ctx context.Context, input *SendRequestInput) (*SendRequestOutput, error)

	// AcceptRequest accepts a received request
	AcceptRequest(ctx context.Context, input *RequestInput) error

	// RejectRequest drops a pending request in either direction
	RejectRequest(ctx context.Context, input *RequestInput) error

	// RemoveFriend ends a friendship
	RemoveFriend(ctx context.Context, input *RequestInput) error

	// ListFriends lists friends along with their running sessions
	ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error)

	// ListRequests lists pending requests
	ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error)

	// GetReceivedRequestsCount counts requests waiting for the user's answer
	GetReceivedRequestsCount(ctx context.Context, input *ListRequestsInput) (int, error)

	// SearchByNickname finds users by nickname
	SearchByNickname(ctx context.Context, input *SearchByNicknameInput) (*SearchByNicknameOutput, error)
}
