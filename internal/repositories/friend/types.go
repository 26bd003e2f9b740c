package friend

import (
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// CreateRequestInput contains parameters for sending a friend request
type CreateRequestInput struct {
	FromUserID string
	ToUserID   string
	CreatedAt  time.Time
}

// GetRequestInput contains parameters for retrieving a request as seen by UserID
type GetRequestInput struct {
	UserID      string
	OtherUserID string
}

// ListRequestsInput contains parameters for listing requests
type ListRequestsInput struct {
	UserID string
}

// ListRequestsOutput holds the pending requests of a user
type ListRequestsOutput struct {
	Requests []*models.FriendRequest
}

// DeleteRequestInput contains parameters for removing a request
type DeleteRequestInput struct {
	UserID      string
	OtherUserID string
}

// AddFriendshipInput contains parameters for creating a friendship
type AddFriendshipInput struct {
	UserID      string
	OtherUserID string
}

// RemoveFriendshipInput contains parameters for removing a friendship
type RemoveFriendshipInput struct {
	UserID      string
	OtherUserID string
}

// ListFriendsInput contains parameters for listing friends
type ListFriendsInput struct {
	UserID string
}

// ListFriendsOutput holds friend IDs
type ListFriendsOutput struct {
	FriendIDs []string
}

// AreFriendsInput contains parameters for a friendship check
type AreFriendsInput struct {
	UserID      string
	OtherUserID string
}
