package friend

import (
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	friendRepo "github.com/KirkDiggler/kiroku/internal/repositories/friend"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config holds configuration for the friend service
type Config struct {
	FriendRepo  friendRepo.Repository
	UserRepo    userRepo.Repository
	SessionRepo sessionRepo.Repository
	Clock       clockwork.Clock
	Logger      *zap.Logger

	// MaxConcurrentLookups bounds the per-friend status fetches
	MaxConcurrentLookups int
}

// SendRequestInput contains parameters for sending a request
type SendRequestInput struct {
	UserID   string `validate:"required"`
	FriendID string `validate:"required"`
}

// SendRequestOutput tells whether the request turned into a friendship
type SendRequestOutput struct {
	// Accepted is set when the other user had already asked
	Accepted bool
}

// RequestInput identifies the other party of a request or friendship
type RequestInput struct {
	UserID   string `validate:"required"`
	FriendID string `validate:"required"`
}

// ListFriendsInput contains parameters for listing friends
type ListFriendsInput struct {
	UserID string `validate:"required"`
}

// FriendStatus is a friend and the session they are in, if any
type FriendStatus struct {
	User    *models.User            `json:"user"`
	Ongoing *models.DrinkingSession `json:"ongoing,omitempty"`
}

// ListFriendsOutput holds friends in the order of their IDs
type ListFriendsOutput struct {
	Friends []*FriendStatus
}

// ListRequestsInput contains parameters for listing requests
type ListRequestsInput struct {
	UserID string `validate:"required"`
}

// ListRequestsOutput splits pending requests by direction
type ListRequestsOutput struct {
	Sent     []*models.FriendRequest
	Received []*models.FriendRequest
}

// SearchByNicknameInput contains parameters for a nickname search
type SearchByNicknameInput struct {
	UserID   string `validate:"required"`
	Nickname string `validate:"required,max=64"`
}

// SearchByNicknameOutput holds the matching users, never including the searcher
type SearchByNicknameOutput struct {
	Users []*models.User
}
