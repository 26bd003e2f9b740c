package user

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	userMocks "github.com/KirkDiggler/kiroku/internal/repositories/user/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	clock        *clockwork.FakeClock
	userService  Service
	ctx          context.Context

	testTime   time.Time
	testUserID string
	testUser   *models.User
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2023, 7, 18, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.clock = clockwork.NewFakeClockAt(s.testTime)

	s.testUser = &models.User{
		ID:          s.testUserID,
		DisplayName: "Tester",
		Nickname:    "Tester",
		NicknameKey: "tester",
		CreatedAt:   s.testTime.AddDate(0, -2, 0),
		Timezone:    models.Timezone{Selected: "UTC"},
	}

	svc, err := New(&Config{
		UserRepo:        s.mockUserRepo,
		Clock:           s.clock,
		DefaultTimezone: "Europe/Prague",
		NoticeCooldown:  24 * time.Hour,
	})
	s.Require().NoError(err)
	s.userService = svc
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) expectGetUser() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(s.testUser, nil)
}

func (s *UserServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.clock})
	s.ErrorIs(err, ErrNilUserRepo)

	_, err = New(&Config{UserRepo: s.mockUserRepo})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{UserRepo: s.mockUserRepo, Clock: s.clock, DefaultTimezone: "Nowhere/Land"})
	s.ErrorIs(err, ErrInvalidTimezone)
}

func (s *UserServiceTestSuite) TestRegister() {
	var created *models.User
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.CreateUserInput) error {
			created = input.User
			return nil
		})

	user, err := s.userService.Register(s.ctx, &RegisterInput{
		UserID:      s.testUserID,
		DisplayName: "Pepa",
		Nickname:    " Pépa Novák ",
	})
	s.Require().NoError(err)
	s.Equal(created, user)
	s.Equal("Pépa Novák", user.Nickname)
	s.Equal("pepa_novak", user.NicknameKey)
	s.Equal("Europe/Prague", user.Timezone.Selected)
	s.True(user.Timezone.Automatic)
	s.True(s.testTime.Equal(user.CreatedAt))
}

func (s *UserServiceTestSuite) TestRegisterNicknameDefaultsToDisplayName() {
	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := s.userService.Register(s.ctx, &RegisterInput{
		UserID:      s.testUserID,
		DisplayName: "Karel",
		Timezone:    "America/New_York",
	})
	s.Require().NoError(err)
	s.Equal("karel", user.NicknameKey)
	s.Equal("America/New_York", user.Timezone.Selected)
	s.False(user.Timezone.Automatic)
}

func (s *UserServiceTestSuite) TestRegisterTwice() {
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(userRepo.ErrUserExists)

	_, err := s.userService.Register(s.ctx, &RegisterInput{UserID: s.testUserID, DisplayName: "Pepa"})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserServiceTestSuite) TestRegisterRejectsBadTimezone() {
	_, err := s.userService.Register(s.ctx, &RegisterInput{
		UserID:      s.testUserID,
		DisplayName: "Pepa",
		Timezone:    "Moon/Base",
	})
	s.ErrorIs(err, ErrInvalidTimezone)
}

func (s *UserServiceTestSuite) TestGetUserNotFound() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.userService.GetUser(s.ctx, &GetUserInput{UserID: "missing"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestUpdateProfile() {
	s.expectGetUser()
	s.mockUserRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := s.userService.UpdateProfile(s.ctx, &UpdateProfileInput{
		UserID:   s.testUserID,
		Nickname: "Big-Drinker",
	})
	s.Require().NoError(err)
	s.Equal("Tester", user.DisplayName)
	s.Equal("big_drinker", user.NicknameKey)
}

func (s *UserServiceTestSuite) TestUpdateTimezone() {
	s.expectGetUser()
	s.mockUserRepo.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			s.Equal("Asia/Tokyo", input.User.Timezone.Selected)
			s.False(input.User.Timezone.Automatic)
			return nil
		})

	_, err := s.userService.UpdateTimezone(s.ctx, &UpdateTimezoneInput{
		UserID:   s.testUserID,
		Timezone: "Asia/Tokyo",
	})
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestUpdateTimezoneInvalid() {
	_, err := s.userService.UpdateTimezone(s.ctx, &UpdateTimezoneInput{
		UserID:   s.testUserID,
		Timezone: "Not/AZone",
	})
	s.ErrorIs(err, ErrInvalidTimezone)
}

func (s *UserServiceTestSuite) TestGetPreferencesDefaults() {
	s.mockUserRepo.EXPECT().
		GetPreferences(gomock.Any(), &userRepo.GetPreferencesInput{UserID: s.testUserID}).
		Return(nil, userRepo.ErrPreferencesNotFound)

	prefs, err := s.userService.GetPreferences(s.ctx, &GetPreferencesInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(models.DefaultPreferences(), prefs)
}

func (s *UserServiceTestSuite) TestUpdatePreferences() {
	prefs := models.DefaultPreferences()
	prefs.DrinksToUnits[models.DrinkBeer] = 1.2

	s.mockUserRepo.EXPECT().
		SavePreferences(gomock.Any(), &userRepo.SavePreferencesInput{UserID: s.testUserID, Preferences: prefs}).
		Return(nil)

	saved, err := s.userService.UpdatePreferences(s.ctx, &UpdatePreferencesInput{
		UserID:      s.testUserID,
		Preferences: prefs,
	})
	s.Require().NoError(err)
	s.Equal(1.2, saved.DrinksToUnits[models.DrinkBeer])
}

func (s *UserServiceTestSuite) TestUpdatePreferencesValidation() {
	testCases := []struct {
		name   string
		modify func(p *models.Preferences)
	}{
		{"nil", nil},
		{"negative weight", func(p *models.Preferences) { p.DrinksToUnits[models.DrinkWine] = -1 }},
		{"unknown drink", func(p *models.Preferences) { p.DrinksToUnits["mead"] = 1 }},
		{"no thresholds", func(p *models.Preferences) { p.UnitsToColors = nil }},
		{"unknown colour", func(p *models.Preferences) { p.UnitsToColors[0].Color = "purple" }},
		{"duplicate threshold", func(p *models.Preferences) { p.UnitsToColors[1].Units = 0 }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var prefs *models.Preferences
			if tc.modify != nil {
				prefs = models.DefaultPreferences()
				tc.modify(prefs)
			}
			_, err := s.userService.UpdatePreferences(s.ctx, &UpdatePreferencesInput{
				UserID:      s.testUserID,
				Preferences: prefs,
			})
			s.ErrorIs(err, ErrInvalidPreferences)
		})
	}
}

func (s *UserServiceTestSuite) TestAgreeToTerms() {
	s.expectGetUser()
	s.mockUserRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := s.userService.AgreeToTerms(s.ctx, &AgreeToTermsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Require().NotNil(user.AgreedToTermsAt)
	s.True(s.testTime.Equal(*user.AgreedToTermsAt))

	// A second agreement keeps the first timestamp and writes nothing.
	s.expectGetUser()
	s.clock.Advance(time.Hour)
	again, err := s.userService.AgreeToTerms(s.ctx, &AgreeToTermsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(s.testTime.Equal(*again.AgreedToTermsAt))
}

func (s *UserServiceTestSuite) TestNoticeCooldown() {
	s.expectGetUser()
	show, err := s.userService.ShouldShowNotice(s.ctx, &ShouldShowNoticeInput{
		UserID: s.testUserID,
		Notice: models.NoticeAppUpdate,
	})
	s.Require().NoError(err)
	s.True(show)

	s.expectGetUser()
	s.mockUserRepo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.userService.DismissNotice(s.ctx, &DismissNoticeInput{
		UserID: s.testUserID,
		Notice: models.NoticeAppUpdate,
	}))

	s.clock.Advance(23 * time.Hour)
	s.expectGetUser()
	show, err = s.userService.ShouldShowNotice(s.ctx, &ShouldShowNoticeInput{
		UserID: s.testUserID,
		Notice: models.NoticeAppUpdate,
	})
	s.Require().NoError(err)
	s.False(show)

	s.clock.Advance(time.Hour)
	s.expectGetUser()
	show, err = s.userService.ShouldShowNotice(s.ctx, &ShouldShowNoticeInput{
		UserID: s.testUserID,
		Notice: models.NoticeAppUpdate,
	})
	s.Require().NoError(err)
	s.True(show)
}

func (s *UserServiceTestSuite) TestUnknownNotice() {
	_, err := s.userService.ShouldShowNotice(s.ctx, &ShouldShowNoticeInput{
		UserID: s.testUserID,
		Notice: "newsletter",
	})
	s.ErrorIs(err, ErrInvalidNotice)
}
