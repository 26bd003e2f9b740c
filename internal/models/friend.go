package models

import "time"

// FriendRequestStatus tells which side of a pending request a user is on
type FriendRequestStatus string

const (
	// FriendRequestSent is a request the user sent
	FriendRequestSent FriendRequestStatus = "sent"

	// FriendRequestReceived is a request the user received
	FriendRequestReceived FriendRequestStatus = "received"
)

// FriendRequest is a pending request between the owner and another user
type FriendRequest struct {
	// UserID is the other party of the request
	UserID string `json:"user_id"`

	// Status is the owner's side of the request
	Status FriendRequestStatus `json:"status"`

	// CreatedAt is when the request was sent
	CreatedAt time.Time `json:"created_at"`
}
