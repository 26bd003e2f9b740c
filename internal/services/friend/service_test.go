package friend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	sessionMocks "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session/mocks"
	friendRepo "github.com/KirkDiggler/kiroku/internal/repositories/friend"
	friendMocks "github.com/KirkDiggler/kiroku/internal/repositories/friend/mocks"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	userMocks "github.com/KirkDiggler/kiroku/internal/repositories/user/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FriendServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockFriendRepo  *friendMocks.MockRepository
	mockUserRepo    *userMocks.MockRepository
	mockSessionRepo *sessionMocks.MockRepository
	clock           *clockwork.FakeClock
	friendService   Service
	ctx             context.Context

	testTime     time.Time
	testUserID   string
	testFriendID string
	testFriend   *models.User
}

func (s *FriendServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFriendRepo = friendMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2023, 7, 18, 12, 0, 0, 0, time.UTC)
	s.clock = clockwork.NewFakeClockAt(s.testTime)
	s.testUserID = "user-1"
	s.testFriendID = "user-2"
	s.testFriend = &models.User{ID: s.testFriendID, Nickname: "Friend", NicknameKey: "friend"}

	svc, err := New(&Config{
		FriendRepo:  s.mockFriendRepo,
		UserRepo:    s.mockUserRepo,
		SessionRepo: s.mockSessionRepo,
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.friendService = svc
}

func (s *FriendServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFriendServiceSuite(t *testing.T) {
	suite.Run(t, new(FriendServiceTestSuite))
}

func (s *FriendServiceTestSuite) pair() *friendRepo.GetRequestInput {
	return &friendRepo.GetRequestInput{UserID: s.testUserID, OtherUserID: s.testFriendID}
}

func (s *FriendServiceTestSuite) expectTargetExists() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testFriendID}).
		Return(s.testFriend, nil)
	s.mockFriendRepo.EXPECT().
		AreFriends(gomock.Any(), &friendRepo.AreFriendsInput{UserID: s.testUserID, OtherUserID: s.testFriendID}).
		Return(false, nil)
}

func (s *FriendServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{UserRepo: s.mockUserRepo, SessionRepo: s.mockSessionRepo, Clock: s.clock})
	s.ErrorIs(err, ErrNilFriendRepo)

	_, err = New(&Config{FriendRepo: s.mockFriendRepo, UserRepo: s.mockUserRepo, Clock: s.clock})
	s.ErrorIs(err, ErrNilSessionRepo)
}

func (s *FriendServiceTestSuite) TestSendRequest() {
	s.expectTargetExists()
	s.mockFriendRepo.EXPECT().
		GetRequest(gomock.Any(), s.pair()).
		Return(nil, friendRepo.ErrRequestNotFound)
	s.mockFriendRepo.EXPECT().
		CreateRequest(gomock.Any(), &friendRepo.CreateRequestInput{
			FromUserID: s.testUserID,
			ToUserID:   s.testFriendID,
			CreatedAt:  s.testTime,
		}).
		Return(nil)

	output, err := s.friendService.SendRequest(s.ctx, &SendRequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.Require().NoError(err)
	s.False(output.Accepted)
}

func (s *FriendServiceTestSuite) TestSendRequestAcceptsPendingRequest() {
	s.expectTargetExists()
	s.mockFriendRepo.EXPECT().
		GetRequest(gomock.Any(), s.pair()).
		Return(&models.FriendRequest{UserID: s.testFriendID, Status: models.FriendRequestReceived}, nil)
	s.mockFriendRepo.EXPECT().
		AddFriendship(gomock.Any(), &friendRepo.AddFriendshipInput{UserID: s.testUserID, OtherUserID: s.testFriendID}).
		Return(nil)

	output, err := s.friendService.SendRequest(s.ctx, &SendRequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.Require().NoError(err)
	s.True(output.Accepted)
}

func (s *FriendServiceTestSuite) TestSendRequestTwice() {
	s.expectTargetExists()
	s.mockFriendRepo.EXPECT().
		GetRequest(gomock.Any(), s.pair()).
		Return(&models.FriendRequest{UserID: s.testFriendID, Status: models.FriendRequestSent}, nil)

	_, err := s.friendService.SendRequest(s.ctx, &SendRequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.ErrorIs(err, ErrRequestAlreadySent)
}

func (s *FriendServiceTestSuite) TestSendRequestErrors() {
	_, err := s.friendService.SendRequest(s.ctx, &SendRequestInput{UserID: s.testUserID, FriendID: s.testUserID})
	s.ErrorIs(err, ErrCannotFriendSelf)

	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)
	_, err = s.friendService.SendRequest(s.ctx, &SendRequestInput{UserID: s.testUserID, FriendID: "ghost"})
	s.ErrorIs(err, ErrUserNotFound)

	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(s.testFriend, nil)
	s.mockFriendRepo.EXPECT().AreFriends(gomock.Any(), gomock.Any()).Return(true, nil)
	_, err = s.friendService.SendRequest(s.ctx, &SendRequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.ErrorIs(err, ErrAlreadyFriends)
}

func (s *FriendServiceTestSuite) TestAcceptRequest() {
	s.mockFriendRepo.EXPECT().
		GetRequest(gomock.Any(), s.pair()).
		Return(&models.FriendRequest{UserID: s.testFriendID, Status: models.FriendRequestReceived}, nil)
	s.mockFriendRepo.EXPECT().AddFriendship(gomock.Any(), gomock.Any()).Return(nil)

	s.NoError(s.friendService.AcceptRequest(s.ctx, &RequestInput{UserID: s.testUserID, FriendID: s.testFriendID}))
}

func (s *FriendServiceTestSuite) TestAcceptOwnRequestFails() {
	s.mockFriendRepo.EXPECT().
		GetRequest(gomock.Any(), s.pair()).
		Return(&models.FriendRequest{UserID: s.testFriendID, Status: models.FriendRequestSent}, nil)

	err := s.friendService.AcceptRequest(s.ctx, &RequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.ErrorIs(err, ErrRequestNotFound)
}

func (s *FriendServiceTestSuite) TestRejectRequest() {
	s.mockFriendRepo.EXPECT().
		GetRequest(gomock.Any(), s.pair()).
		Return(&models.FriendRequest{UserID: s.testFriendID, Status: models.FriendRequestReceived}, nil)
	s.mockFriendRepo.EXPECT().
		DeleteRequest(gomock.Any(), &friendRepo.DeleteRequestInput{UserID: s.testUserID, OtherUserID: s.testFriendID}).
		Return(nil)

	s.NoError(s.friendService.RejectRequest(s.ctx, &RequestInput{UserID: s.testUserID, FriendID: s.testFriendID}))

	s.mockFriendRepo.EXPECT().GetRequest(gomock.Any(), s.pair()).Return(nil, friendRepo.ErrRequestNotFound)
	err := s.friendService.RejectRequest(s.ctx, &RequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.ErrorIs(err, ErrRequestNotFound)
}

func (s *FriendServiceTestSuite) TestRemoveFriend() {
	s.mockFriendRepo.EXPECT().AreFriends(gomock.Any(), gomock.Any()).Return(false, nil)
	err := s.friendService.RemoveFriend(s.ctx, &RequestInput{UserID: s.testUserID, FriendID: s.testFriendID})
	s.ErrorIs(err, ErrNotFriends)

	s.mockFriendRepo.EXPECT().AreFriends(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockFriendRepo.EXPECT().
		RemoveFriendship(gomock.Any(), &friendRepo.RemoveFriendshipInput{UserID: s.testUserID, OtherUserID: s.testFriendID}).
		Return(nil)
	s.NoError(s.friendService.RemoveFriend(s.ctx, &RequestInput{UserID: s.testUserID, FriendID: s.testFriendID}))
}

func (s *FriendServiceTestSuite) TestListFriends() {
	drinking := &models.DrinkingSession{ID: "s-1", UserID: "user-2", Ongoing: true}

	s.mockFriendRepo.EXPECT().
		ListFriends(gomock.Any(), &friendRepo.ListFriendsInput{UserID: s.testUserID}).
		Return(&friendRepo.ListFriendsOutput{FriendIDs: []string{"user-2", "user-3", "user-4"}}, nil)

	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: "user-2"}).
		Return(&models.User{ID: "user-2"}, nil)
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: "user-3"}).
		Return(&models.User{ID: "user-3"}, nil)
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: "user-4"}).
		Return(nil, userRepo.ErrUserNotFound)

	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), &sessionRepo.GetOngoingSessionInput{UserID: "user-2"}).
		Return(drinking, nil)
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), &sessionRepo.GetOngoingSessionInput{UserID: "user-3"}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	output, err := s.friendService.ListFriends(s.ctx, &ListFriendsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Require().Len(output.Friends, 2)
	s.Equal("user-2", output.Friends[0].User.ID)
	s.Equal(drinking, output.Friends[0].Ongoing)
	s.Equal("user-3", output.Friends[1].User.ID)
	s.Nil(output.Friends[1].Ongoing)
}

func (s *FriendServiceTestSuite) TestListFriendsFailure() {
	boom := errors.New("connection reset")

	s.mockFriendRepo.EXPECT().
		ListFriends(gomock.Any(), gomock.Any()).
		Return(&friendRepo.ListFriendsOutput{FriendIDs: []string{"user-2"}}, nil)
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := s.friendService.ListFriends(s.ctx, &ListFriendsInput{UserID: s.testUserID})
	s.ErrorIs(err, boom)
}

func (s *FriendServiceTestSuite) TestRequestsCount() {
	s.mockFriendRepo.EXPECT().
		ListRequests(gomock.Any(), &friendRepo.ListRequestsInput{UserID: s.testUserID}).
		Return(&friendRepo.ListRequestsOutput{Requests: []*models.FriendRequest{
			{UserID: "a", Status: models.FriendRequestReceived},
			{UserID: "b", Status: models.FriendRequestSent},
			{UserID: "c", Status: models.FriendRequestReceived},
		}}, nil)

	count, err := s.friendService.GetReceivedRequestsCount(s.ctx, &ListRequestsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *FriendServiceTestSuite) TestSearchByNicknameExcludesSelf() {
	s.mockUserRepo.EXPECT().
		FindByNicknameKey(gomock.Any(), &userRepo.FindByNicknameKeyInput{NicknameKey: "friend"}).
		Return(&userRepo.FindByNicknameKeyOutput{UserIDs: []string{s.testUserID, s.testFriendID}}, nil)
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testFriendID}).
		Return(s.testFriend, nil)

	output, err := s.friendService.SearchByNickname(s.ctx, &SearchByNicknameInput{
		UserID:   s.testUserID,
		Nickname: " Friend ",
	})
	s.Require().NoError(err)
	s.Equal([]*models.User{s.testFriend}, output.Users)
}
