package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix                  = "user:"
	nicknameKeyPrefix              = "nickname:"
	preferencesKeyPrefix           = "preferences:"
	preferenceChangesChannelPrefix = "preference_changes:"
)

var (
	// ErrUserNotFound is returned when a user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when creating a user whose ID is taken
	ErrUserExists = errors.New("user already exists")

	// ErrPreferencesNotFound is returned when a user never stored preferences
	ErrPreferencesNotFound = errors.New("preferences not found")
)

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
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

func userKey(userID string) string {
	return userKeyPrefix + userID
}

func nicknameKey(key string) string {
	return nicknameKeyPrefix + key
}

func preferencesKey(userID string) string {
	return preferencesKeyPrefix + userID
}

func preferenceChangesChannel(userID string) string {
	return preferenceChangesChannelPrefix + userID
}

// CreateUser stores a new user
func (r *redisRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}
	if input.User.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	userJSON, err := json.Marshal(input.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	created, err := r.client.SetNX(ctx, userKey(input.User.ID), userJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !created {
		return ErrUserExists
	}

	if input.User.NicknameKey != "" {
		if err := r.client.SAdd(ctx, nicknameKey(input.User.NicknameKey), input.User.ID).Err(); err != nil {
			return fmt.Errorf("failed to index nickname: %w", err)
		}
	}

	return nil
}

// SaveUser replaces an existing user
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	user := input.User
	if user.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	existing, err := r.GetUser(ctx, &GetUserInput{UserID: user.ID})
	if err != nil {
		return err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, userKey(user.ID), userJSON, 0)
		if existing.NicknameKey != user.NicknameKey {
			if existing.NicknameKey != "" {
				pipe.SRem(ctx, nicknameKey(existing.NicknameKey), user.ID)
			}
			if user.NicknameKey != "" {
				pipe.SAdd(ctx, nicknameKey(user.NicknameKey), user.ID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, userKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// FindByNicknameKey returns the IDs indexed under a nickname key
func (r *redisRepository) FindByNicknameKey(ctx context.Context, input *FindByNicknameKeyInput) (*FindByNicknameKeyOutput, error) {
	if input == nil || input.NicknameKey == "" {
		return nil, errors.New("input and nickname key cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, nicknameKey(input.NicknameKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to find nickname: %w", err)
	}

	return &FindByNicknameKeyOutput{UserIDs: userIDs}, nil
}

// GetPreferences retrieves a user's stored preferences
func (r *redisRepository) GetPreferences(ctx context.Context, input *GetPreferencesInput) (*models.Preferences, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	prefsJSON, err := r.client.Get(ctx, preferencesKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(prefsJSON), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	return &prefs, nil
}

// SavePreferences stores preferences and publishes them in the same transaction
func (r *redisRepository) SavePreferences(ctx context.Context, input *SavePreferencesInput) error {
	if input == nil || input.UserID == "" || input.Preferences == nil {
		return errors.New("input, user ID and preferences cannot be empty")
	}

	prefsJSON, err := json.Marshal(input.Preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, preferencesKey(input.UserID), prefsJSON, 0)
		pipe.Publish(ctx, preferenceChangesChannel(input.UserID), prefsJSON)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}

// SubscribePreferences streams a user's preference changes
func (r *redisRepository) SubscribePreferences(ctx context.Context, input *SubscribePreferencesInput) (*PreferencesSubscription, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sub := r.client.Subscribe(ctx, preferenceChangesChannel(input.UserID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to preference changes: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	changes := make(chan *models.Preferences, 8)

	go func() {
		defer close(changes)
		msgCh := sub.Channel()
		for {
			select {
			case msg, ok := <-msgCh:
				if !ok {
					return
				}
				var prefs models.Preferences
				if err := json.Unmarshal([]byte(msg.Payload), &prefs); err != nil {
					continue
				}
				select {
				case changes <- &prefs:
				case <-subCtx.Done():
					return
				}
			case <-subCtx.Done():
				return
			}
		}
	}()

	return NewPreferencesSubscription(changes, func() {
		cancel()
		_ = sub.Close()
	}), nil
}
