package session

import (
	"context"
	"errors"
	"testing"
	"time"

	uuidMocks "github.com/KirkDiggler/kiroku/internal/common/uuid/mocks"
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	sessionMocks "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session/mocks"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	userMocks "github.com/KirkDiggler/kiroku/internal/repositories/user/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockUserRepo    *userMocks.MockRepository
	mockUUID        *uuidMocks.MockGenerator
	clock           *clockwork.FakeClock
	sessionService  Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testUserID    string
	testSessionID string
	testUser      *models.User
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2023, 7, 18, 18, 45, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.testSessionID = "test-session-id"
	s.clock = clockwork.NewFakeClockAt(s.testTime)

	s.testUser = &models.User{
		ID:        s.testUserID,
		CreatedAt: s.testTime.AddDate(-1, 0, 0),
		Timezone:  models.Timezone{Selected: "Europe/Prague"},
	}

	svc, err := New(&Config{
		SessionRepo:     s.mockSessionRepo,
		UserRepo:        s.mockUserRepo,
		Clock:           s.clock,
		UUIDGenerator:   s.mockUUID,
		DefaultTimezone: "UTC",
	})
	s.Require().NoError(err)
	s.sessionService = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) ongoing(drinks models.Drinks) *models.DrinkingSession {
	return &models.DrinkingSession{
		ID:        s.testSessionID,
		UserID:    s.testUserID,
		StartTime: s.testTime.Add(-time.Hour),
		Timezone:  "Europe/Prague",
		Drinks:    drinks,
		Ongoing:   true,
		Type:      models.SessionTypeLive,
	}
}

func (s *SessionServiceTestSuite) expectDefaultPreferences() {
	s.mockUserRepo.EXPECT().
		GetPreferences(gomock.Any(), &userRepo.GetPreferencesInput{UserID: s.testUserID}).
		Return(nil, userRepo.ErrPreferencesNotFound)
}

func (s *SessionServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{UserRepo: s.mockUserRepo, Clock: s.clock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{SessionRepo: s.mockSessionRepo, UserRepo: s.mockUserRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{
		SessionRepo:     s.mockSessionRepo,
		UserRepo:        s.mockUserRepo,
		Clock:           s.clock,
		UUIDGenerator:   s.mockUUID,
		DefaultTimezone: "Nowhere/Land",
	})
	s.ErrorIs(err, ErrInvalidTimezone)
}

func (s *SessionServiceTestSuite) TestStartLiveSessionUsesUserTimezone() {
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), &sessionRepo.GetOngoingSessionInput{UserID: s.testUserID}).
		Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(s.testUser, nil)
	s.mockUUID.EXPECT().NewID().Return(s.testSessionID)

	var saved *models.DrinkingSession
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			saved = input.Session
			return nil
		})

	output, err := s.sessionService.StartLiveSession(s.ctx, &StartLiveSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(output.AlreadyRunning)
	s.Require().NotNil(saved)
	s.Equal(s.testSessionID, saved.ID)
	s.Equal("Europe/Prague", saved.Timezone)
	s.True(saved.Ongoing)
	s.Equal(models.SessionTypeLive, saved.Type)
	s.True(s.testTime.Equal(saved.StartTime))
}

func (s *SessionServiceTestSuite) TestStartLiveSessionReturnsRunningSession() {
	running := s.ongoing(models.Drinks{models.DrinkBeer: 1})
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), gomock.Any()).
		Return(running, nil)

	output, err := s.sessionService.StartLiveSession(s.ctx, &StartLiveSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(output.AlreadyRunning)
	s.Equal(running, output.Session)
}

func (s *SessionServiceTestSuite) TestStartLiveSessionRejectsBadTimezone() {
	_, err := s.sessionService.StartLiveSession(s.ctx, &StartLiveSessionInput{
		UserID:   s.testUserID,
		Timezone: "Mars/Olympus",
	})
	s.ErrorIs(err, ErrInvalidTimezone)
}

func (s *SessionServiceTestSuite) TestAddDrinks() {
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), gomock.Any()).
		Return(s.ongoing(models.Drinks{models.DrinkBeer: 1}), nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	s.expectDefaultPreferences()

	output, err := s.sessionService.AddDrinks(s.ctx, &AddDrinksInput{
		UserID: s.testUserID,
		Drink:  models.DrinkBeer,
		Count:  2,
	})
	s.Require().NoError(err)
	s.Equal(3, output.Session.Drinks[models.DrinkBeer])
	s.Equal(3.0, output.Units)
}

func (s *SessionServiceTestSuite) TestAddDrinksValidation() {
	_, err := s.sessionService.AddDrinks(s.ctx, &AddDrinksInput{UserID: s.testUserID, Drink: "mead", Count: 1})
	s.ErrorIs(err, ErrInvalidDrink)

	_, err = s.sessionService.AddDrinks(s.ctx, &AddDrinksInput{UserID: s.testUserID, Drink: models.DrinkBeer, Count: 0})
	s.ErrorIs(err, ErrInvalidCount)

	_, err = s.sessionService.AddDrinks(s.ctx, &AddDrinksInput{Drink: models.DrinkBeer, Count: 1})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *SessionServiceTestSuite) TestAddDrinksWithoutOngoingSession() {
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.sessionService.AddDrinks(s.ctx, &AddDrinksInput{
		UserID: s.testUserID,
		Drink:  models.DrinkWine,
		Count:  1,
	})
	s.ErrorIs(err, ErrNoOngoingSession)
}

func (s *SessionServiceTestSuite) TestRemoveDrinksNeverGoesNegative() {
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), gomock.Any()).
		Return(s.ongoing(models.Drinks{models.DrinkBeer: 1, models.DrinkWine: 2}), nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	s.expectDefaultPreferences()

	output, err := s.sessionService.RemoveDrinks(s.ctx, &RemoveDrinksInput{
		UserID: s.testUserID,
		Drink:  models.DrinkBeer,
		Count:  5,
	})
	s.Require().NoError(err)
	s.NotContains(output.Session.Drinks, models.DrinkBeer)
	s.Equal(2, output.Session.Drinks[models.DrinkWine])
}

func (s *SessionServiceTestSuite) TestSetBlackoutOnStoredSession() {
	stored := s.ongoing(models.Drinks{models.DrinkBeer: 3})
	stored.Ongoing = false
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), &sessionRepo.GetSessionInput{UserID: s.testUserID, SessionID: s.testSessionID}).
		Return(stored, nil)
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.True(input.Session.Blackout)
			return nil
		})
	s.expectDefaultPreferences()

	_, err := s.sessionService.SetBlackout(s.ctx, &SetBlackoutInput{
		UserID:    s.testUserID,
		SessionID: s.testSessionID,
		Blackout:  true,
	})
	s.Require().NoError(err)
}

func (s *SessionServiceTestSuite) TestSetNoteUnknownSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.sessionService.SetNote(s.ctx, &SetNoteInput{
		UserID:    s.testUserID,
		SessionID: "missing",
		Note:      "hello",
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestEndSession() {
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), gomock.Any()).
		Return(s.ongoing(models.Drinks{models.DrinkBeer: 2}), nil)
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.False(input.Session.Ongoing)
			s.Require().NotNil(input.Session.EndTime)
			s.True(s.testTime.Equal(*input.Session.EndTime))
			return nil
		})

	output, err := s.sessionService.EndSession(s.ctx, &EndSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(output.Discarded)
}

func (s *SessionServiceTestSuite) TestEndEmptySessionDiscardsIt() {
	s.mockSessionRepo.EXPECT().
		GetOngoingSession(gomock.Any(), gomock.Any()).
		Return(s.ongoing(models.Drinks{}), nil)
	s.mockSessionRepo.EXPECT().
		DeleteSession(gomock.Any(), &sessionRepo.DeleteSessionInput{UserID: s.testUserID, SessionID: s.testSessionID}).
		Return(nil)

	output, err := s.sessionService.EndSession(s.ctx, &EndSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(output.Discarded)
}

func (s *SessionServiceTestSuite) TestLogSession() {
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(s.testUser, nil)
	s.mockUUID.EXPECT().NewID().Return("logged-id")
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			session := input.Session
			s.Equal(models.SessionTypeEdit, session.Type)
			s.False(session.Ongoing)
			s.Equal("Europe/Prague", session.Timezone)
			// 18:45 UTC is 20:45 in Prague during summer
			s.Equal("2023-07-10 20:45", session.LocalStart().Format("2006-01-02 15:04"))
			return nil
		})
	s.expectDefaultPreferences()

	output, err := s.sessionService.LogSession(s.ctx, &LogSessionInput{
		UserID: s.testUserID,
		Date:   "2023-07-10",
		Drinks: models.Drinks{models.DrinkWine: 2},
	})
	s.Require().NoError(err)
	s.Equal(2.0, output.Units)
}

func (s *SessionServiceTestSuite) TestLogSessionInFuture() {
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(s.testUser, nil)

	_, err := s.sessionService.LogSession(s.ctx, &LogSessionInput{
		UserID: s.testUserID,
		Date:   "2023-07-20",
	})
	s.ErrorIs(err, ErrDateInFuture)
}

func (s *SessionServiceTestSuite) TestLogSessionBadDate() {
	_, err := s.sessionService.LogSession(s.ctx, &LogSessionInput{
		UserID: s.testUserID,
		Date:   "18.7.2023",
	})
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *SessionServiceTestSuite) TestDeleteSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		DeleteSession(gomock.Any(), gomock.Any()).
		Return(sessionRepo.ErrSessionNotFound)

	err := s.sessionService.DeleteSession(s.ctx, &DeleteSessionInput{
		UserID:    s.testUserID,
		SessionID: "missing",
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestGetDayOverview() {
	prague, err := time.LoadLocation("Europe/Prague")
	s.Require().NoError(err)

	blackout := &models.DrinkingSession{
		ID: "late", UserID: s.testUserID, Timezone: "Europe/Prague", Blackout: true,
		StartTime: time.Date(2023, 7, 10, 23, 0, 0, 0, prague),
		Drinks:    models.Drinks{models.DrinkStrongShot: 4},
	}
	early := &models.DrinkingSession{
		ID: "early", UserID: s.testUserID, Timezone: "Europe/Prague",
		StartTime: time.Date(2023, 7, 10, 18, 0, 0, 0, prague),
		Drinks:    models.Drinks{models.DrinkBeer: 2},
	}
	otherDay := &models.DrinkingSession{
		ID: "other", UserID: s.testUserID, Timezone: "Europe/Prague",
		StartTime: time.Date(2023, 7, 11, 0, 30, 0, 0, prague),
		Drinks:    models.Drinks{models.DrinkBeer: 9},
	}

	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(s.testUser, nil)
	s.mockSessionRepo.EXPECT().
		GetSessionsInRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.GetSessionsInRangeInput) (*sessionRepo.GetSessionsOutput, error) {
			s.Equal(s.testUserID, input.UserID)
			s.True(input.From.Equal(time.Date(2023, 7, 8, 22, 0, 0, 0, prague)))
			s.True(input.To.Equal(time.Date(2023, 7, 12, 2, 0, 0, 0, prague)))
			return &sessionRepo.GetSessionsOutput{
				Sessions: []*models.DrinkingSession{blackout, early, otherDay},
			}, nil
		})
	s.expectDefaultPreferences()

	output, err := s.sessionService.GetDayOverview(s.ctx, &GetDayOverviewInput{
		UserID: s.testUserID,
		Date:   "2023-07-10",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)
	s.Equal("early", output.Sessions[0].Session.ID)
	s.Equal(models.ColorGreen, output.Sessions[0].ColorTag)
	s.Equal(models.ColorBlackout, output.Sessions[1].ColorTag)
	s.Equal(6.0, output.TotalUnits)
	s.Equal(models.ColorBlackout, output.ColorTag)
}

func (s *SessionServiceTestSuite) TestGetTrackingStartDate() {
	s.mockSessionRepo.EXPECT().
		GetEarliestSession(gomock.Any(), gomock.Any()).
		Return(&models.DrinkingSession{
			StartTime: time.Date(2022, 12, 31, 23, 30, 0, 0, time.UTC),
			Timezone:  "Europe/Prague",
		}, nil)

	output, err := s.sessionService.GetTrackingStartDate(s.ctx, &GetTrackingStartDateInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Require().NotNil(output.StartDate)
	s.Equal("2023-01-01", output.StartDate.Format(models.DateFormat))
}

func (s *SessionServiceTestSuite) TestGetTrackingStartDateWithoutSessions() {
	s.mockSessionRepo.EXPECT().
		GetEarliestSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	output, err := s.sessionService.GetTrackingStartDate(s.ctx, &GetTrackingStartDateInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Nil(output.StartDate)
}

func (s *SessionServiceTestSuite) TestFixTimezoneWritesOneBatch() {
	sessions := []*models.DrinkingSession{
		{ID: "a", UserID: s.testUserID, StartTime: s.testTime.AddDate(0, 0, -3), Timezone: "UTC"},
		{ID: "b", UserID: s.testUserID, StartTime: s.testTime.AddDate(0, 0, -2), Timezone: "Europe/Prague"},
		{ID: "c", UserID: s.testUserID, StartTime: s.testTime.AddDate(0, 0, -1)},
	}
	s.mockSessionRepo.EXPECT().
		GetAllSessions(gomock.Any(), &sessionRepo.GetAllSessionsInput{UserID: s.testUserID}).
		Return(&sessionRepo.GetSessionsOutput{Sessions: sessions}, nil)
	s.mockSessionRepo.EXPECT().
		SaveSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionsInput) error {
			s.Equal(s.testUserID, input.UserID)
			s.Require().Len(input.Sessions, 2)
			s.Equal("a", input.Sessions[0].ID)
			s.Equal("c", input.Sessions[1].ID)
			for _, session := range input.Sessions {
				s.Equal("Europe/Prague", session.Timezone)
			}
			return nil
		})

	output, err := s.sessionService.FixTimezone(s.ctx, &FixTimezoneInput{
		UserID:      s.testUserID,
		OldTimezone: "UTC",
		NewTimezone: "Europe/Prague",
	})
	s.Require().NoError(err)
	s.Equal(2, output.FixedCount)
}

func (s *SessionServiceTestSuite) TestFixTimezoneSameZoneDoesNothing() {
	output, err := s.sessionService.FixTimezone(s.ctx, &FixTimezoneInput{
		UserID:      s.testUserID,
		OldTimezone: "UTC",
		NewTimezone: "UTC",
	})
	s.Require().NoError(err)
	s.Zero(output.FixedCount)
}

func (s *SessionServiceTestSuite) TestFixTimezoneSurfacesWriteFailure() {
	s.mockSessionRepo.EXPECT().
		GetAllSessions(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.GetSessionsOutput{Sessions: []*models.DrinkingSession{
			{ID: "a", UserID: s.testUserID, StartTime: s.testTime, Timezone: "UTC"},
		}}, nil)
	s.mockSessionRepo.EXPECT().
		SaveSessions(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := s.sessionService.FixTimezone(s.ctx, &FixTimezoneInput{
		UserID:      s.testUserID,
		OldTimezone: "UTC",
		NewTimezone: "Europe/Prague",
	})
	s.ErrorIs(err, ErrTimezoneFixFailed)
}

func (s *SessionServiceTestSuite) TestFixTimezoneRejectsUnknownZone() {
	_, err := s.sessionService.FixTimezone(s.ctx, &FixTimezoneInput{
		UserID:      s.testUserID,
		OldTimezone: "UTC",
		NewTimezone: "Europe/Atlantis",
	})
	s.ErrorIs(err, ErrInvalidTimezone)
}
