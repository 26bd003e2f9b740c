package drinking_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix      = "drinking_session:"
	userSessionsKeyPrefix = "user_sessions:"
	ongoingKeyPrefix      = "ongoing_session:"
	changesChannelPrefix  = "session_changes:"

	// subscriptionBuffer is how many undelivered changes a subscriber may lag
	subscriptionBuffer = 32
)

// ErrSessionNotFound is returned when a session does not exist
var ErrSessionNotFound = errors.New("drinking session not found")

// Config holds configuration for the Redis drinking session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drinking session repository
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

func sessionKey(userID, sessionID string) string {
	return sessionKeyPrefix + userID + ":" + sessionID
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

func ongoingKey(userID string) string {
	return ongoingKeyPrefix + userID
}

func changesChannel(userID string) string {
	return changesChannelPrefix + userID
}

func validateSession(session *models.DrinkingSession) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}
	if session.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if session.UserID == "" {
		return errors.New("session user ID cannot be empty")
	}
	if session.StartTime.IsZero() {
		return errors.New("session start time cannot be empty")
	}
	return nil
}

// queueSave adds every command needed to persist one session to pipe. The
// ongoing pointer is only cleared when it still points at this session.
func queueSave(ctx context.Context, pipe redis.Pipeliner, session *models.DrinkingSession, currentOngoing string) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.ID, err)
	}

	change, err := json.Marshal(&models.SessionChange{
		Type:      models.SessionChangeSaved,
		UserID:    session.UserID,
		SessionID: session.ID,
		Session:   session,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session change: %w", err)
	}

	pipe.Set(ctx, sessionKey(session.UserID, session.ID), sessionJSON, 0)
	pipe.ZAdd(ctx, userSessionsKey(session.UserID), redis.Z{
		Score:  float64(session.StartTime.UnixMilli()),
		Member: session.ID,
	})

	if session.Ongoing {
		pipe.Set(ctx, ongoingKey(session.UserID), session.ID, 0)
	} else if currentOngoing == session.ID {
		pipe.Del(ctx, ongoingKey(session.UserID))
	}

	pipe.Publish(ctx, changesChannel(session.UserID), change)
	return nil
}

func (r *redisRepository) currentOngoingID(ctx context.Context, userID string) (string, error) {
	id, err := r.client.Get(ctx, ongoingKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get ongoing session ID: %w", err)
	}
	return id, nil
}

// SaveSession creates or replaces a session
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateSession(input.Session); err != nil {
		return err
	}

	currentOngoing, err := r.currentOngoingID(ctx, input.Session.UserID)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return queueSave(ctx, pipe, input.Session, currentOngoing)
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// SaveSessions writes the whole batch inside one MULTI/EXEC block so either
// every session is stored or none is
func (r *redisRepository) SaveSessions(ctx context.Context, input *SaveSessionsInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if len(input.Sessions) == 0 {
		return nil
	}

	for _, session := range input.Sessions {
		if err := validateSession(session); err != nil {
			return err
		}
		if session.UserID != input.UserID {
			return fmt.Errorf("session %s belongs to another user", session.ID)
		}
	}

	currentOngoing, err := r.currentOngoingID(ctx, input.UserID)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, session := range input.Sessions {
			if err := queueSave(ctx, pipe, session, currentOngoing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save %d sessions: %w", len(input.Sessions), err)
	}

	return nil
}

// GetSession retrieves a single session
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.DrinkingSession, error) {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return nil, errors.New("input, user ID and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.UserID, input.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.DrinkingSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return errors.New("input, user ID and session ID cannot be empty")
	}

	key := sessionKey(input.UserID, input.SessionID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	currentOngoing, err := r.currentOngoingID(ctx, input.UserID)
	if err != nil {
		return err
	}

	change, err := json.Marshal(&models.SessionChange{
		Type:      models.SessionChangeDeleted,
		UserID:    input.UserID,
		SessionID: input.SessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session change: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, userSessionsKey(input.UserID), input.SessionID)
		if currentOngoing == input.SessionID {
			pipe.Del(ctx, ongoingKey(input.UserID))
		}
		pipe.Publish(ctx, changesChannel(input.UserID), change)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// GetSessionsInRange retrieves the sessions starting in [From, To)
func (r *redisRepository) GetSessionsInRange(ctx context.Context, input *GetSessionsInRangeInput) (*GetSessionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if !input.To.After(input.From) {
		return &GetSessionsOutput{Sessions: []*models.DrinkingSession{}}, nil
	}

	sessionIDs, err := r.client.ZRangeByScore(ctx, userSessionsKey(input.UserID), &redis.ZRangeBy{
		Min: strconv.FormatInt(input.From.UnixMilli(), 10),
		Max: "(" + strconv.FormatInt(input.To.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs in range: %w", err)
	}

	sessions, err := r.loadSessions(ctx, input.UserID, sessionIDs)
	if err != nil {
		return nil, err
	}

	return &GetSessionsOutput{Sessions: sessions}, nil
}

// GetAllSessions retrieves every session of a user
func (r *redisRepository) GetAllSessions(ctx context.Context, input *GetAllSessionsInput) (*GetSessionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, userSessionsKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	sessions, err := r.loadSessions(ctx, input.UserID, sessionIDs)
	if err != nil {
		return nil, err
	}

	return &GetSessionsOutput{Sessions: sessions}, nil
}

// GetEarliestSession retrieves the first session a user ever recorded
func (r *redisRepository) GetEarliestSession(ctx context.Context, input *GetEarliestSessionInput) (*models.DrinkingSession, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, userSessionsKey(input.UserID), 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get earliest session ID: %w", err)
	}
	if len(sessionIDs) == 0 {
		return nil, ErrSessionNotFound
	}

	return r.GetSession(ctx, &GetSessionInput{
		UserID:    input.UserID,
		SessionID: sessionIDs[0],
	})
}

// GetOngoingSession retrieves the user's running live session
func (r *redisRepository) GetOngoingSession(ctx context.Context, input *GetOngoingSessionInput) (*models.DrinkingSession, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sessionID, err := r.currentOngoingID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	session, err := r.GetSession(ctx, &GetSessionInput{
		UserID:    input.UserID,
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			// Pointer outlived its session, clear it
			r.client.Del(ctx, ongoingKey(input.UserID))
		}
		return nil, err
	}

	return session, nil
}

// loadSessions fetches the given IDs in one pipeline, keeping their order.
// IDs whose record vanished in the meantime are skipped.
func (r *redisRepository) loadSessions(ctx context.Context, userID string, sessionIDs []string) ([]*models.DrinkingSession, error) {
	if len(sessionIDs) == 0 {
		return []*models.DrinkingSession{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, sessionID := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKey(userID, sessionID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.DrinkingSession, 0, len(sessionIDs))
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var session models.DrinkingSession
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

// Subscribe streams every change to a user's sessions. The subscription is
// confirmed by Redis before it is returned, so no change published after
// Subscribe returns is missed.
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sub := r.client.Subscribe(ctx, changesChannel(input.UserID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to session changes: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	changes := make(chan *models.SessionChange, subscriptionBuffer)

	go func() {
		defer close(changes)
		msgCh := sub.Channel()
		for {
			select {
			case msg, ok := <-msgCh:
				if !ok {
					return
				}
				var change models.SessionChange
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					continue
				}
				select {
				case changes <- &change:
				case <-subCtx.Done():
					return
				}
			case <-subCtx.Done():
				return
			}
		}
	}()

	return NewSubscription(changes, func() {
		cancel()
		_ = sub.Close()
	}), nil
}
