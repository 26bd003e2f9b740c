package friend

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kiroku/internal/common/dbkey"
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	friendRepo "github.com/KirkDiggler/kiroku/internal/repositories/friend"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentLookups = 8

// service implements the Service interface
type service struct {
	friendRepo  friendRepo.Repository
	userRepo    userRepo.Repository
	sessionRepo sessionRepo.Repository
	clock       clockwork.Clock
	logger      *zap.Logger
	validate    *validator.Validate
	maxLookups  int
}

// New creates a new friend service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.FriendRepo == nil {
		return nil, ErrNilFriendRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxLookups := cfg.MaxConcurrentLookups
	if maxLookups <= 0 {
		maxLookups = defaultMaxConcurrentLookups
	}

	return &service{
		friendRepo:  cfg.FriendRepo,
		userRepo:    cfg.UserRepo,
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		logger:      logger.Named("friend"),
		validate:    validator.New(),
		maxLookups:  maxLookups,
	}, nil
}

// SendRequest sends a request to FriendID. If FriendID already asked the
// user, the two become friends straight away.
func (s *service) SendRequest(ctx context.Context, input *SendRequestInput) (*SendRequestOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if input.UserID == input.FriendID {
		return nil, ErrCannotFriendSelf
	}

	if _, err := s.getUser(ctx, input.FriendID); err != nil {
		return nil, err
	}

	friends, err := s.friendRepo.AreFriends(ctx, &friendRepo.AreFriendsInput{
		UserID:      input.UserID,
		OtherUserID: input.FriendID,
	})
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, ErrAlreadyFriends
	}

	existing, err := s.friendRepo.GetRequest(ctx, &friendRepo.GetRequestInput{
		UserID:      input.UserID,
		OtherUserID: input.FriendID,
	})
	if err != nil && !errors.Is(err, friendRepo.ErrRequestNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendRequestSent:
			return nil, ErrRequestAlreadySent
		case models.FriendRequestReceived:
			if err := s.befriend(ctx, input.UserID, input.FriendID); err != nil {
				return nil, err
			}
			return &SendRequestOutput{Accepted: true}, nil
		}
	}

	err = s.friendRepo.CreateRequest(ctx, &friendRepo.CreateRequestInput{
		FromUserID: input.UserID,
		ToUserID:   input.FriendID,
		CreatedAt:  s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("friend request sent",
		zap.String("user_id", input.UserID),
		zap.String("friend_id", input.FriendID))

	return &SendRequestOutput{}, nil
}

// AcceptRequest accepts a request the user received
func (s *service) AcceptRequest(ctx context.Context, input *RequestInput) error {
	if err := s.check(input); err != nil {
		return err
	}

	request, err := s.getRequest(ctx, input.UserID, input.FriendID)
	if err != nil {
		return err
	}
	if request.Status != models.FriendRequestReceived {
		return ErrRequestNotFound
	}

	return s.befriend(ctx, input.UserID, input.FriendID)
}

// RejectRequest drops a pending request. Works for both received requests
// and cancelling a sent one.
func (s *service) RejectRequest(ctx context.Context, input *RequestInput) error {
	if err := s.check(input); err != nil {
		return err
	}

	if _, err := s.getRequest(ctx, input.UserID, input.FriendID); err != nil {
		return err
	}

	err := s.friendRepo.DeleteRequest(ctx, &friendRepo.DeleteRequestInput{
		UserID:      input.UserID,
		OtherUserID: input.FriendID,
	})
	if errors.Is(err, friendRepo.ErrRequestNotFound) {
		return ErrRequestNotFound
	}
	return err
}

// RemoveFriend ends a friendship on both sides
func (s *service) RemoveFriend(ctx context.Context, input *RequestInput) error {
	if err := s.check(input); err != nil {
		return err
	}

	friends, err := s.friendRepo.AreFriends(ctx, &friendRepo.AreFriendsInput{
		UserID:      input.UserID,
		OtherUserID: input.FriendID,
	})
	if err != nil {
		return err
	}
	if !friends {
		return ErrNotFriends
	}

	if err := s.friendRepo.RemoveFriendship(ctx, &friendRepo.RemoveFriendshipInput{
		UserID:      input.UserID,
		OtherUserID: input.FriendID,
	}); err != nil {
		return err
	}

	s.logger.Info("friend removed",
		zap.String("user_id", input.UserID),
		zap.String("friend_id", input.FriendID))
	return nil
}

// ListFriends fetches every friend's account and running session
// concurrently. Friends whose account no longer exists are skipped.
func (s *service) ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	ids, err := s.friendRepo.ListFriends(ctx, &friendRepo.ListFriendsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	statuses := make([]*FriendStatus, len(ids.FriendIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxLookups)
	for i, friendID := range ids.FriendIDs {
		g.Go(func() error {
			user, err := s.userRepo.GetUser(gctx, &userRepo.GetUserInput{UserID: friendID})
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					s.logger.Warn("friend without account", zap.String("friend_id", friendID))
					return nil
				}
				return fmt.Errorf("failed to get friend %s: %w", friendID, err)
			}

			ongoing, err := s.sessionRepo.GetOngoingSession(gctx, &sessionRepo.GetOngoingSessionInput{UserID: friendID})
			if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return fmt.Errorf("failed to get session of friend %s: %w", friendID, err)
			}

			statuses[i] = &FriendStatus{User: user, Ongoing: ongoing}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	friends := make([]*FriendStatus, 0, len(statuses))
	for _, status := range statuses {
		if status != nil {
			friends = append(friends, status)
		}
	}

	return &ListFriendsOutput{Friends: friends}, nil
}

// ListRequests lists pending requests split by direction
func (s *service) ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	requests, err := s.friendRepo.ListRequests(ctx, &friendRepo.ListRequestsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	output := &ListRequestsOutput{}
	for _, request := range requests.Requests {
		switch request.Status {
		case models.FriendRequestSent:
			output.Sent = append(output.Sent, request)
		case models.FriendRequestReceived:
			output.Received = append(output.Received, request)
		}
	}
	return output, nil
}

// GetReceivedRequestsCount counts requests waiting for the user
func (s *service) GetReceivedRequestsCount(ctx context.Context, input *ListRequestsInput) (int, error) {
	output, err := s.ListRequests(ctx, input)
	if err != nil {
		return 0, err
	}
	return len(output.Received), nil
}

// SearchByNickname looks users up by the cleaned form of the nickname
func (s *service) SearchByNickname(ctx context.Context, input *SearchByNicknameInput) (*SearchByNicknameOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	found, err := s.userRepo.FindByNicknameKey(ctx, &userRepo.FindByNicknameKeyInput{
		NicknameKey: dbkey.Clean(input.Nickname),
	})
	if err != nil {
		return nil, err
	}

	output := &SearchByNicknameOutput{}
	for _, id := range found.UserIDs {
		if id == input.UserID {
			continue
		}
		user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: id})
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		output.Users = append(output.Users, user)
	}
	return output, nil
}

func (s *service) befriend(ctx context.Context, userID, friendID string) error {
	if err := s.friendRepo.AddFriendship(ctx, &friendRepo.AddFriendshipInput{
		UserID:      userID,
		OtherUserID: friendID,
	}); err != nil {
		return err
	}

	s.logger.Info("friendship created",
		zap.String("user_id", userID),
		zap.String("friend_id", friendID))
	return nil
}

func (s *service) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) getRequest(ctx context.Context, userID, friendID string) (*models.FriendRequest, error) {
	request, err := s.friendRepo.GetRequest(ctx, &friendRepo.GetRequestInput{
		UserID:      userID,
		OtherUserID: friendID,
	})
	if err != nil {
		if errors.Is(err, friendRepo.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *service) check(input any) error {
	if input == nil {
		return ErrInvalidInput
	}
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
