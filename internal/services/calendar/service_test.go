package calendar

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	sessionMocks "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session/mocks"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	userMocks "github.com/KirkDiggler/kiroku/internal/repositories/user/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockUserRepo    *userMocks.MockRepository
	clock           *clockwork.FakeClock
	calendarService Service
	ctx             context.Context

	testUserID string
	testUser   *models.User
	changes    chan *models.SessionChange
	prefs      chan *models.Preferences
	subsClosed atomic.Int32
}

func (s *CalendarServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.clock = clockwork.NewFakeClockAt(time.Date(2023, 7, 18, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.testUserID = "user-1"
	s.testUser = &models.User{
		ID:        s.testUserID,
		CreatedAt: time.Date(2022, 1, 10, 9, 0, 0, 0, time.UTC),
		Timezone:  models.Timezone{Selected: "UTC"},
	}
	s.changes = make(chan *models.SessionChange, 4)
	s.prefs = make(chan *models.Preferences, 4)
	s.subsClosed.Store(0)

	svc, err := New(&Config{
		SessionRepo: s.mockSessionRepo,
		UserRepo:    s.mockUserRepo,
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.calendarService = svc
}

func (s *CalendarServiceTestSuite) TearDownTest() {
	s.Require().NoError(s.calendarService.Close())
}

func TestCalendarServiceSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}

func (s *CalendarServiceTestSuite) expectUser() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(s.testUser, nil)
	s.mockUserRepo.EXPECT().
		GetPreferences(gomock.Any(), &userRepo.GetPreferencesInput{UserID: s.testUserID}).
		Return(nil, userRepo.ErrPreferencesNotFound)
}

func (s *CalendarServiceTestSuite) expectOpen(trackingStart *time.Time, july ...*models.DrinkingSession) {
	s.expectUser()

	if trackingStart == nil {
		s.mockSessionRepo.EXPECT().
			GetEarliestSession(gomock.Any(), gomock.Any()).
			Return(nil, sessionRepo.ErrSessionNotFound)
	} else {
		s.mockSessionRepo.EXPECT().
			GetEarliestSession(gomock.Any(), gomock.Any()).
			Return(beers("first", *trackingStart, 1), nil)
	}

	s.mockSessionRepo.EXPECT().
		Subscribe(gomock.Any(), &sessionRepo.SubscribeInput{UserID: s.testUserID}).
		Return(sessionRepo.NewSubscription(s.changes, func() { s.subsClosed.Add(1) }), nil)
	s.mockUserRepo.EXPECT().
		SubscribePreferences(gomock.Any(), &userRepo.SubscribePreferencesInput{UserID: s.testUserID}).
		Return(userRepo.NewPreferencesSubscription(s.prefs, func() { s.subsClosed.Add(1) }), nil)

	s.mockSessionRepo.EXPECT().
		GetSessionsInRange(gomock.Any(), monthRange(month(2023, time.July))).
		Return(&sessionRepo.GetSessionsOutput{Sessions: july}, nil)
}

func (s *CalendarServiceTestSuite) TestOpenCalendar() {
	tracking := time.Date(2023, 2, 14, 19, 0, 0, 0, time.UTC)
	s.expectOpen(&tracking, beers("a", time.Date(2023, 7, 3, 20, 0, 0, 0, time.UTC), 3))

	view, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal("2023-07", view.Month)
	s.Equal("2023-02-14", view.MinDate)
	s.Equal("2023-07-18", view.MaxDate)
	s.True(view.HasPrevious)
	s.False(view.HasNext)
	s.Require().Len(view.Days, 1)
	s.Equal("2023-07-03", view.Days[0].Date)
	s.Equal(3.0, view.Days[0].TotalUnits)

	// Opening again reuses the view
	again, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(view, again)
}

func (s *CalendarServiceTestSuite) TestOpenCalendarUnknownUser() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: "ghost"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *CalendarServiceTestSuite) TestNavigation() {
	tracking := time.Date(2023, 5, 14, 19, 0, 0, 0, time.UTC)
	s.expectOpen(&tracking)

	_, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.mockSessionRepo.EXPECT().
		GetSessionsInRange(gomock.Any(), monthRange(month(2023, time.June))).
		Return(&sessionRepo.GetSessionsOutput{Sessions: []*models.DrinkingSession{
			beers("june", time.Date(2023, 6, 1, 20, 0, 0, 0, time.UTC), 4),
		}}, nil)

	view, err := s.calendarService.PreviousMonth(s.ctx, &NavigateInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal("2023-06", view.Month)
	s.Require().Len(view.Days, 1)
	s.Equal(4.0, view.Days[0].TotalUnits)
	s.True(view.HasNext)

	s.mockSessionRepo.EXPECT().
		GetSessionsInRange(gomock.Any(), monthRange(month(2023, time.May))).
		Return(&sessionRepo.GetSessionsOutput{}, nil)

	view, err = s.calendarService.PreviousMonth(s.ctx, &NavigateInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal("2023-05", view.Month)
	s.False(view.HasPrevious)

	// May is the tracking start month, the view stays put
	view, err = s.calendarService.PreviousMonth(s.ctx, &NavigateInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal("2023-05", view.Month)

	for i := 0; i < 3; i++ {
		view, err = s.calendarService.NextMonth(s.ctx, &NavigateInput{UserID: s.testUserID})
		s.Require().NoError(err)
	}
	s.Equal("2023-07", view.Month)
	s.False(view.HasNext)
}

func (s *CalendarServiceTestSuite) TestLiveChangesReachOpenView() {
	s.expectOpen(nil)

	view, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Empty(view.Days)
	s.Equal("2022-01-10", view.MinDate)

	s.changes <- &models.SessionChange{
		Type:      models.SessionChangeSaved,
		UserID:    s.testUserID,
		SessionID: "live",
		Session:   beers("live", time.Date(2023, 7, 18, 10, 0, 0, 0, time.UTC), 12),
	}

	s.Eventually(func() bool {
		view, err := s.calendarService.CurrentView(s.ctx, &NavigateInput{UserID: s.testUserID})
		return err == nil && len(view.Days) == 1 && view.Days[0].ColorTag == models.ColorRed
	}, 2*time.Second, 10*time.Millisecond)

	s.prefs <- &models.Preferences{
		DrinksToUnits: map[models.DrinkKey]float64{models.DrinkBeer: 0.1},
		UnitsToColors: []models.ColorThreshold{{Units: 0, Color: models.ColorGreen}},
	}

	s.Eventually(func() bool {
		view, err := s.calendarService.CurrentView(s.ctx, &NavigateInput{UserID: s.testUserID})
		return err == nil && len(view.Days) == 1 && view.Days[0].ColorTag == models.ColorGreen
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *CalendarServiceTestSuite) TestCloseCalendar() {
	s.expectOpen(nil)

	_, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.Require().NoError(s.calendarService.CloseCalendar(s.ctx, &CloseCalendarInput{UserID: s.testUserID}))
	s.Equal(int32(2), s.subsClosed.Load())

	_, err = s.calendarService.PreviousMonth(s.ctx, &NavigateInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrCalendarNotOpen)

	err = s.calendarService.CloseCalendar(s.ctx, &CloseCalendarInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrCalendarNotOpen)
}

func (s *CalendarServiceTestSuite) TestCloseRejectsNewViews() {
	s.expectOpen(nil)

	_, err := s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.Require().NoError(s.calendarService.Close())
	s.Equal(int32(2), s.subsClosed.Load())

	_, err = s.calendarService.OpenCalendar(s.ctx, &OpenCalendarInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrServiceClosed)
}

func (s *CalendarServiceTestSuite) TestGetMonth() {
	s.expectUser()
	s.mockSessionRepo.EXPECT().
		GetSessionsInRange(gomock.Any(), rangeMatcher{
			from: time.Date(2023, 6, 29, 22, 0, 0, 0, time.UTC),
			to:   time.Date(2023, 8, 2, 2, 0, 0, 0, time.UTC),
		}).
		Return(&sessionRepo.GetSessionsOutput{Sessions: []*models.DrinkingSession{
			beers("june", time.Date(2023, 6, 30, 20, 0, 0, 0, time.UTC), 1),
			beers("july", time.Date(2023, 7, 18, 20, 0, 0, 0, time.UTC), 2),
		}}, nil)
	s.mockSessionRepo.EXPECT().
		GetEarliestSession(gomock.Any(), gomock.Any()).
		Return(beers("first", time.Date(2023, 1, 2, 20, 0, 0, 0, time.UTC), 1), nil)

	view, err := s.calendarService.GetMonth(s.ctx, &GetMonthInput{UserID: s.testUserID, Month: "2023-07"})
	s.Require().NoError(err)
	s.Require().Len(view.Days, 1)
	s.Equal(models.DayAggregate{
		Date:         "2023-07-18",
		TotalUnits:   2,
		ColorTag:     models.ColorGreen,
		SessionCount: 1,
	}, *view.Days[0])
	s.Equal("2023-01-02", view.MinDate)
	s.True(view.HasPrevious)
	s.False(view.HasNext)
}

func (s *CalendarServiceTestSuite) TestGetMonthInvalidMonth() {
	_, err := s.calendarService.GetMonth(s.ctx, &GetMonthInput{UserID: s.testUserID, Month: "July"})
	s.ErrorIs(err, ErrInvalidMonth)
}
