package friend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	friendsKeyPrefix  = "friends:"
	requestsKeyPrefix = "friend_requests:"
)

// ErrRequestNotFound is returned when no request exists between two users
var ErrRequestNotFound = errors.New("friend request not found")

// Config holds configuration for the Redis friend repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed friend repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func friendsKey(userID string) string {
	return friendsKeyPrefix + userID
}

func requestsKey(userID string) string {
	return requestsKeyPrefix + userID
}

func validatePair(userID, otherUserID string) error {
	if userID == "" || otherUserID == "" {
		return errors.New("user IDs cannot be empty")
	}
	if userID == otherUserID {
		return errors.New("user IDs must differ")
	}
	return nil
}

// CreateRequest stores the request as sent on one side and received on the other
func (r *redisRepository) CreateRequest(ctx context.Context, input *CreateRequestInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validatePair(input.FromUserID, input.ToUserID); err != nil {
		return err
	}

	sent, err := json.Marshal(&models.FriendRequest{
		UserID:    input.ToUserID,
		Status:    models.FriendRequestSent,
		CreatedAt: input.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	received, err := json.Marshal(&models.FriendRequest{
		UserID:    input.FromUserID,
		Status:    models.FriendRequestReceived,
		CreatedAt: input.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, requestsKey(input.FromUserID), input.ToUserID, sent)
		pipe.HSet(ctx, requestsKey(input.ToUserID), input.FromUserID, received)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}

	return nil
}

// GetRequest retrieves the request between two users from UserID's side
func (r *redisRepository) GetRequest(ctx context.Context, input *GetRequestInput) (*models.FriendRequest, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validatePair(input.UserID, input.OtherUserID); err != nil {
		return nil, err
	}

	requestJSON, err := r.client.HGet(ctx, requestsKey(input.UserID), input.OtherUserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get friend request: %w", err)
	}

	var request models.FriendRequest
	if err := json.Unmarshal([]byte(requestJSON), &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal friend request: %w", err)
	}

	return &request, nil
}

// ListRequests retrieves pending requests, oldest first
func (r *redisRepository) ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, requestsKey(input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}

	requests := make([]*models.FriendRequest, 0, len(raw))
	for otherID, requestJSON := range raw {
		var request models.FriendRequest
		if err := json.Unmarshal([]byte(requestJSON), &request); err != nil {
			return nil, fmt.Errorf("failed to unmarshal friend request from %s: %w", otherID, err)
		}
		requests = append(requests, &request)
	}

	sort.Slice(requests, func(i, j int) bool {
		if requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].UserID < requests[j].UserID
		}
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})

	return &ListRequestsOutput{Requests: requests}, nil
}

// DeleteRequest removes the request from both users
func (r *redisRepository) DeleteRequest(ctx context.Context, input *DeleteRequestInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validatePair(input.UserID, input.OtherUserID); err != nil {
		return err
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, requestsKey(input.UserID), input.OtherUserID)
		pipe.HDel(ctx, requestsKey(input.OtherUserID), input.UserID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete friend request: %w", err)
	}

	return nil
}

// AddFriendship links both users and clears any request between them
func (r *redisRepository) AddFriendship(ctx context.Context, input *AddFriendshipInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validatePair(input.UserID, input.OtherUserID); err != nil {
		return err
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, friendsKey(input.UserID), input.OtherUserID)
		pipe.SAdd(ctx, friendsKey(input.OtherUserID), input.UserID)
		pipe.HDel(ctx, requestsKey(input.UserID), input.OtherUserID)
		pipe.HDel(ctx, requestsKey(input.OtherUserID), input.UserID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add friendship: %w", err)
	}

	return nil
}

// RemoveFriendship unlinks both users
func (r *redisRepository) RemoveFriendship(ctx context.Context, input *RemoveFriendshipInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validatePair(input.UserID, input.OtherUserID); err != nil {
		return err
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, friendsKey(input.UserID), input.OtherUserID)
		pipe.SRem(ctx, friendsKey(input.OtherUserID), input.UserID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove friendship: %w", err)
	}

	return nil
}

// ListFriends retrieves friend IDs in lexical order
func (r *redisRepository) ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	friendIDs, err := r.client.SMembers(ctx, friendsKey(input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	sort.Strings(friendIDs)

	return &ListFriendsOutput{FriendIDs: friendIDs}, nil
}

// AreFriends reports whether OtherUserID is in UserID's friend set
func (r *redisRepository) AreFriends(ctx context.Context, input *AreFriendsInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}
	if err := validatePair(input.UserID, input.OtherUserID); err != nil {
		return false, err
	}

	ok, err := r.client.SIsMember(ctx, friendsKey(input.UserID), input.OtherUserID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}

	return ok, nil
}
