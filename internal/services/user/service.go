package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/kiroku/internal/common/dbkey"
	"github.com/KirkDiggler/kiroku/internal/models"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultNoticeCooldown applies when the config leaves the cooldown unset
const DefaultNoticeCooldown = 7 * 24 * time.Hour

// service implements the Service interface
type service struct {
	userRepo        userRepo.Repository
	clock           clockwork.Clock
	logger          *zap.Logger
	validate        *validator.Validate
	defaultTimezone string
	noticeCooldown  time.Duration
}

// New creates a new user service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	defaultTimezone := cfg.DefaultTimezone
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	if _, err := time.LoadLocation(defaultTimezone); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, defaultTimezone)
	}

	cooldown := cfg.NoticeCooldown
	if cooldown <= 0 {
		cooldown = DefaultNoticeCooldown
	}

	return &service{
		userRepo:        cfg.UserRepo,
		clock:           cfg.Clock,
		logger:          logger.Named("user"),
		validate:        validator.New(),
		defaultTimezone: defaultTimezone,
		noticeCooldown:  cooldown,
	}, nil
}

// Register creates an account. The nickname defaults to the display name.
func (s *service) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		nickname = strings.TrimSpace(input.DisplayName)
	}
	if nickname == "" {
		return nil, ErrInvalidNickname
	}

	tz := input.Timezone
	automatic := false
	if tz == "" {
		tz = s.defaultTimezone
		automatic = true
	}

	user := &models.User{
		ID:          input.UserID,
		DisplayName: strings.TrimSpace(input.DisplayName),
		Nickname:    nickname,
		NicknameKey: dbkey.Clean(nickname),
		CreatedAt:   s.clock.Now(),
		Timezone: models.Timezone{
			Selected:  tz,
			Automatic: automatic,
		},
	}

	if err := s.userRepo.CreateUser(ctx, &userRepo.CreateUserInput{User: user}); err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("nickname_key", user.NicknameKey),
		zap.String("timezone", tz))

	return user, nil
}

// GetUser retrieves an account
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	return s.load(ctx, input.UserID)
}

// UpdateProfile changes whichever of the names are set
func (s *service) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*models.User, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	user, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.DisplayName); name != "" {
		user.DisplayName = name
	}
	if nickname := strings.TrimSpace(input.Nickname); nickname != "" {
		user.Nickname = nickname
		user.NicknameKey = dbkey.Clean(nickname)
	}

	return user, s.save(ctx, user)
}

// UpdateTimezone changes the timezone selection
func (s *service) UpdateTimezone(ctx context.Context, input *UpdateTimezoneInput) (*models.User, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	user, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.Timezone = models.Timezone{
		Selected:  input.Timezone,
		Automatic: input.Automatic,
	}

	return user, s.save(ctx, user)
}

// GetPreferences returns stored preferences, or the defaults if none exist
func (s *service) GetPreferences(ctx context.Context, input *GetPreferencesInput) (*models.Preferences, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	prefs, err := s.userRepo.GetPreferences(ctx, &userRepo.GetPreferencesInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrPreferencesNotFound) {
			return models.DefaultPreferences(), nil
		}
		return nil, err
	}
	return prefs, nil
}

// UpdatePreferences validates and stores preferences. Open calendars pick
// the change up through the repository's change feed.
func (s *service) UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*models.Preferences, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := validatePreferences(input.Preferences); err != nil {
		return nil, err
	}

	err := s.userRepo.SavePreferences(ctx, &userRepo.SavePreferencesInput{
		UserID:      input.UserID,
		Preferences: input.Preferences,
	})
	if err != nil {
		return nil, err
	}

	return input.Preferences, nil
}

func validatePreferences(prefs *models.Preferences) error {
	if prefs == nil {
		return fmt.Errorf("%w: missing", ErrInvalidPreferences)
	}
	for key, weight := range prefs.DrinksToUnits {
		if !key.IsValid() {
			return fmt.Errorf("%w: unknown drink %s", ErrInvalidPreferences, key)
		}
		if weight < 0 {
			return fmt.Errorf("%w: negative weight for %s", ErrInvalidPreferences, key)
		}
	}
	if len(prefs.UnitsToColors) == 0 {
		return fmt.Errorf("%w: no colour thresholds", ErrInvalidPreferences)
	}
	seen := make(map[float64]bool, len(prefs.UnitsToColors))
	for _, threshold := range prefs.UnitsToColors {
		if threshold.Units < 0 {
			return fmt.Errorf("%w: negative threshold", ErrInvalidPreferences)
		}
		if seen[threshold.Units] {
			return fmt.Errorf("%w: duplicate threshold %g", ErrInvalidPreferences, threshold.Units)
		}
		seen[threshold.Units] = true
		switch threshold.Color {
		case models.ColorGreen, models.ColorYellow, models.ColorOrange, models.ColorRed:
		default:
			return fmt.Errorf("%w: unknown colour %q", ErrInvalidPreferences, threshold.Color)
		}
	}
	return nil
}

// AgreeToTerms records the acceptance time once
func (s *service) AgreeToTerms(ctx context.Context, input *AgreeToTermsInput) (*models.User, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	user, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.AgreedToTermsAt != nil {
		return user, nil
	}

	now := s.clock.Now()
	user.AgreedToTermsAt = &now
	return user, s.save(ctx, user)
}

// DismissNotice remembers when the notice was dismissed
func (s *service) DismissNotice(ctx context.Context, input *DismissNoticeInput) error {
	if err := s.check(input); err != nil {
		return err
	}
	if !validNotice(input.Notice) {
		return ErrInvalidNotice
	}

	user, err := s.load(ctx, input.UserID)
	if err != nil {
		return err
	}

	if user.DismissedNotices == nil {
		user.DismissedNotices = make(map[models.Notice]time.Time)
	}
	user.DismissedNotices[input.Notice] = s.clock.Now()

	return s.save(ctx, user)
}

// ShouldShowNotice is true for notices never dismissed or dismissed longer
// than the cooldown ago
func (s *service) ShouldShowNotice(ctx context.Context, input *ShouldShowNoticeInput) (bool, error) {
	if err := s.check(input); err != nil {
		return false, err
	}
	if !validNotice(input.Notice) {
		return false, ErrInvalidNotice
	}

	user, err := s.load(ctx, input.UserID)
	if err != nil {
		return false, err
	}

	dismissedAt, ok := user.DismissedNotices[input.Notice]
	if !ok {
		return true, nil
	}
	return s.clock.Since(dismissedAt) >= s.noticeCooldown, nil
}

func validNotice(notice models.Notice) bool {
	return notice == models.NoticeVerifyEmail || notice == models.NoticeAppUpdate
}

func (s *service) load(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) save(ctx context.Context, user *models.User) error {
	err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user})
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *service) check(input any) error {
	if input == nil {
		return ErrInvalidInput
	}
	if err := s.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 && validationErrs[0].Tag() == "timezone" {
			return fmt.Errorf("%w: %v", ErrInvalidTimezone, validationErrs[0].Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
