package friend

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateRequestStoresBothSides() {
	err := s.repo.CreateRequest(context.Background(), &CreateRequestInput{
		FromUserID: "alice",
		ToUserID:   "bob",
		CreatedAt:  s.testNow,
	})
	s.Require().NoError(err)

	sent, err := s.repo.GetRequest(context.Background(), &GetRequestInput{UserID: "alice", OtherUserID: "bob"})
	s.Require().NoError(err)
	s.Equal(models.FriendRequestSent, sent.Status)
	s.Equal("bob", sent.UserID)

	received, err := s.repo.GetRequest(context.Background(), &GetRequestInput{UserID: "bob", OtherUserID: "alice"})
	s.Require().NoError(err)
	s.Equal(models.FriendRequestReceived, received.Status)
	s.True(s.testNow.Equal(received.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestCreateRequestToSelf() {
	err := s.repo.CreateRequest(context.Background(), &CreateRequestInput{
		FromUserID: "alice",
		ToUserID:   "alice",
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListRequestsOrdersByTime() {
	s.Require().NoError(s.repo.CreateRequest(context.Background(), &CreateRequestInput{
		FromUserID: "carol", ToUserID: "bob", CreatedAt: s.testNow.Add(time.Hour),
	}))
	s.Require().NoError(s.repo.CreateRequest(context.Background(), &CreateRequestInput{
		FromUserID: "alice", ToUserID: "bob", CreatedAt: s.testNow,
	}))

	output, err := s.repo.ListRequests(context.Background(), &ListRequestsInput{UserID: "bob"})
	s.Require().NoError(err)
	s.Require().Len(output.Requests, 2)
	s.Equal("alice", output.Requests[0].UserID)
	s.Equal("carol", output.Requests[1].UserID)
}

func (s *RedisRepositoryTestSuite) TestAddFriendshipClearsRequests() {
	s.Require().NoError(s.repo.CreateRequest(context.Background(), &CreateRequestInput{
		FromUserID: "alice", ToUserID: "bob", CreatedAt: s.testNow,
	}))

	s.Require().NoError(s.repo.AddFriendship(context.Background(), &AddFriendshipInput{
		UserID: "bob", OtherUserID: "alice",
	}))

	_, err := s.repo.GetRequest(context.Background(), &GetRequestInput{UserID: "alice", OtherUserID: "bob"})
	s.ErrorIs(err, ErrRequestNotFound)

	ok, err := s.repo.AreFriends(context.Background(), &AreFriendsInput{UserID: "alice", OtherUserID: "bob"})
	s.Require().NoError(err)
	s.True(ok)

	friends, err := s.repo.ListFriends(context.Background(), &ListFriendsInput{UserID: "bob"})
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, friends.FriendIDs)
}

func (s *RedisRepositoryTestSuite) TestDeleteRequest() {
	s.Require().NoError(s.repo.CreateRequest(context.Background(), &CreateRequestInput{
		FromUserID: "alice", ToUserID: "bob", CreatedAt: s.testNow,
	}))

	s.Require().NoError(s.repo.DeleteRequest(context.Background(), &DeleteRequestInput{
		UserID: "bob", OtherUserID: "alice",
	}))

	output, err := s.repo.ListRequests(context.Background(), &ListRequestsInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Empty(output.Requests)
}

func (s *RedisRepositoryTestSuite) TestRemoveFriendship() {
	s.Require().NoError(s.repo.AddFriendship(context.Background(), &AddFriendshipInput{
		UserID: "alice", OtherUserID: "bob",
	}))

	s.Require().NoError(s.repo.RemoveFriendship(context.Background(), &RemoveFriendshipInput{
		UserID: "bob", OtherUserID: "alice",
	}))

	ok, err := s.repo.AreFriends(context.Background(), &AreFriendsInput{UserID: "alice", OtherUserID: "bob"})
	s.Require().NoError(err)
	s.False(ok)
}
