package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/kiroku/internal/common/uuid"
	"github.com/KirkDiggler/kiroku/internal/metrics"
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	userRepo        userRepo.Repository
	clock           clockwork.Clock
	uuidGenerator   uuid.Generator
	logger          *zap.Logger
	validate        *validator.Validate
	defaultTimezone string
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
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

	return &service{
		sessionRepo:     cfg.SessionRepo,
		userRepo:        cfg.UserRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		logger:          logger.Named("session"),
		validate:        validator.New(),
		defaultTimezone: defaultTimezone,
	}, nil
}

// StartLiveSession starts a live session unless one is already running
func (s *service) StartLiveSession(ctx context.Context, input *StartLiveSessionInput) (*StartLiveSessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	existing, err := s.sessionRepo.GetOngoingSession(ctx, &sessionRepo.GetOngoingSessionInput{
		UserID: input.UserID,
	})
	if err == nil {
		return &StartLiveSessionOutput{Session: existing, AlreadyRunning: true}, nil
	}
	if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, err
	}

	tz := s.resolveTimezone(ctx, input.UserID, input.Timezone)
	session := &models.DrinkingSession{
		ID:        s.uuidGenerator.NewID(),
		UserID:    input.UserID,
		StartTime: s.clock.Now(),
		Timezone:  tz,
		Drinks:    models.Drinks{},
		Ongoing:   true,
		Type:      models.SessionTypeLive,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	s.logger.Info("live session started",
		zap.String("user_id", input.UserID),
		zap.String("session_id", session.ID),
		zap.String("timezone", tz))

	return &StartLiveSessionOutput{Session: session}, nil
}

// AddDrinks adds Count drinks of one kind to the ongoing session
func (s *service) AddDrinks(ctx context.Context, input *AddDrinksInput) (*SessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if !input.Drink.IsValid() {
		return nil, ErrInvalidDrink
	}
	if input.Count <= 0 {
		return nil, ErrInvalidCount
	}

	session, err := s.ongoingSession(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if session.Drinks == nil {
		session.Drinks = models.Drinks{}
	}
	session.Drinks[input.Drink] += input.Count

	return s.save(ctx, session)
}

// RemoveDrinks removes up to Count drinks of one kind from the ongoing session
func (s *service) RemoveDrinks(ctx context.Context, input *RemoveDrinksInput) (*SessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if !input.Drink.IsValid() {
		return nil, ErrInvalidDrink
	}
	if input.Count <= 0 {
		return nil, ErrInvalidCount
	}

	session, err := s.ongoingSession(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	remaining := session.Drinks[input.Drink] - input.Count
	if remaining > 0 {
		session.Drinks[input.Drink] = remaining
	} else {
		delete(session.Drinks, input.Drink)
	}

	return s.save(ctx, session)
}

// SetBlackout flags a session as a blackout
func (s *service) SetBlackout(ctx context.Context, input *SetBlackoutInput) (*SessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	session, err := s.targetSession(ctx, input.UserID, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.Blackout = input.Blackout
	return s.save(ctx, session)
}

// SetNote replaces a session's note
func (s *service) SetNote(ctx context.Context, input *SetNoteInput) (*SessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	session, err := s.targetSession(ctx, input.UserID, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.Note = input.Note
	return s.save(ctx, session)
}

// EndSession ends the ongoing session. A session with no drinks, no blackout
// and no note is discarded instead of stored.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	session, err := s.ongoingSession(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if session.Drinks.Count() == 0 && !session.Blackout && session.Note == "" {
		err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
			UserID:    session.UserID,
			SessionID: session.ID,
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info("empty live session discarded",
			zap.String("user_id", session.UserID),
			zap.String("session_id", session.ID))
		return &EndSessionOutput{Session: session, Discarded: true}, nil
	}

	now := s.clock.Now()
	session.EndTime = &now
	session.Ongoing = false

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	return &EndSessionOutput{Session: session}, nil
}

// LogSession records a finished session on a past or current day. The
// session starts at the current time of day on that date.
func (s *service) LogSession(ctx context.Context, input *LogSessionInput) (*SessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := validateDrinks(input.Drinks); err != nil {
		return nil, err
	}

	tz := s.resolveTimezone(ctx, input.UserID, input.Timezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, tz)
	}

	day, err := time.ParseInLocation(models.DateFormat, input.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, input.Date)
	}

	now := s.clock.Now().In(loc)
	if day.After(now) {
		return nil, ErrDateInFuture
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), 0, 0, loc)
	end := start
	session := &models.DrinkingSession{
		ID:        s.uuidGenerator.NewID(),
		UserID:    input.UserID,
		StartTime: start,
		EndTime:   &end,
		Timezone:  tz,
		Drinks:    input.Drinks.Clone(),
		Blackout:  input.Blackout,
		Note:      input.Note,
		Type:      models.SessionTypeEdit,
	}
	if session.Drinks == nil {
		session.Drinks = models.Drinks{}
	}

	return s.save(ctx, session)
}

// UpdateSession replaces the contents of an existing session
func (s *service) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*SessionOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := validateDrinks(input.Drinks); err != nil {
		return nil, err
	}

	session, err := s.targetSession(ctx, input.UserID, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.Drinks = input.Drinks.Clone()
	if session.Drinks == nil {
		session.Drinks = models.Drinks{}
	}
	session.Blackout = input.Blackout
	session.Note = input.Note

	return s.save(ctx, session)
}

// DeleteSession removes a session
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if err := s.check(input); err != nil {
		return err
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		UserID:    input.UserID,
		SessionID: input.SessionID,
	})
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// GetSession retrieves one session with its units and colour
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*SessionSummary, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	session, err := s.targetSession(ctx, input.UserID, input.SessionID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.preferences(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return summarize(session, prefs), nil
}

// GetDayOverview lists the sessions whose local start falls on Date
func (s *service) GetDayOverview(ctx context.Context, input *GetDayOverviewInput) (*GetDayOverviewOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(s.resolveTimezone(ctx, input.UserID, ""))
	if err != nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(models.DateFormat, input.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, input.Date)
	}

	// Sessions are bucketed in their own zone, so widen the day range
	from, to := calendar.PadRange(day, day.AddDate(0, 0, 1))
	output, err := s.sessionRepo.GetSessionsInRange(ctx, &sessionRepo.GetSessionsInRangeInput{
		UserID: input.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, err
	}

	prefs, err := s.preferences(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	var sessions []*models.DrinkingSession
	for _, session := range output.Sessions {
		if calendar.DayKey(session) == input.Date {
			sessions = append(sessions, session)
		}
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	overview := &GetDayOverviewOutput{
		Date:     input.Date,
		Sessions: make([]*SessionSummary, 0, len(sessions)),
	}
	for _, session := range sessions {
		overview.Sessions = append(overview.Sessions, summarize(session, prefs))
	}
	if agg, ok := calendar.Aggregate(sessions, prefs)[input.Date]; ok {
		overview.TotalUnits = agg.TotalUnits
		overview.ColorTag = agg.ColorTag
	}

	return overview, nil
}

// GetTrackingStartDate returns the local start of the user's first session
func (s *service) GetTrackingStartDate(ctx context.Context, input *GetTrackingStartDateInput) (*GetTrackingStartDateOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	earliest, err := s.sessionRepo.GetEarliestSession(ctx, &sessionRepo.GetEarliestSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &GetTrackingStartDateOutput{}, nil
		}
		return nil, err
	}

	local := earliest.LocalStart()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return &GetTrackingStartDateOutput{StartDate: &start}, nil
}

// FixTimezone corrects every session recorded in OldTimezone and writes the
// corrected sessions in one atomic batch
func (s *service) FixTimezone(ctx context.Context, input *FixTimezoneInput) (*FixTimezoneOutput, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if input.OldTimezone == input.NewTimezone {
		return &FixTimezoneOutput{}, nil
	}

	all, err := s.sessionRepo.GetAllSessions(ctx, &sessionRepo.GetAllSessionsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	fixed, err := FixTimezoneSessions(all.Sessions, input.OldTimezone, input.NewTimezone)
	if err != nil {
		return nil, err
	}

	var changed []*models.DrinkingSession
	for i, session := range all.Sessions {
		if needsFix(session, input.OldTimezone) {
			changed = append(changed, fixed[i])
		}
	}
	if len(changed) == 0 {
		return &FixTimezoneOutput{}, nil
	}

	err = s.sessionRepo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		UserID:   input.UserID,
		Sessions: changed,
	})
	if err != nil {
		metrics.TimezoneFixFailures.Inc()
		s.logger.Error("timezone fix failed",
			zap.String("user_id", input.UserID),
			zap.String("old_timezone", input.OldTimezone),
			zap.String("new_timezone", input.NewTimezone),
			zap.Int("sessions", len(changed)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTimezoneFixFailed, err)
	}

	metrics.TimezoneFixedSessions.Add(float64(len(changed)))
	s.logger.Info("timezone fixed",
		zap.String("user_id", input.UserID),
		zap.String("old_timezone", input.OldTimezone),
		zap.String("new_timezone", input.NewTimezone),
		zap.Int("sessions", len(changed)))

	return &FixTimezoneOutput{FixedCount: len(changed)}, nil
}

func (s *service) save(ctx context.Context, session *models.DrinkingSession) (*SessionOutput, error) {
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	prefs, err := s.preferences(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return &SessionOutput{
		Session: session,
		Units:   calendar.CalculateTotalUnits(session.Drinks, prefs),
	}, nil
}

func (s *service) ongoingSession(ctx context.Context, userID string) (*models.DrinkingSession, error) {
	session, err := s.sessionRepo.GetOngoingSession(ctx, &sessionRepo.GetOngoingSessionInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNoOngoingSession
		}
		return nil, err
	}
	return session, nil
}

// targetSession loads sessionID, or the ongoing session when it is empty
func (s *service) targetSession(ctx context.Context, userID, sessionID string) (*models.DrinkingSession, error) {
	if sessionID == "" {
		return s.ongoingSession(ctx, userID)
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// resolveTimezone prefers the explicit zone, then the user's selection, then
// the configured default
func (s *service) resolveTimezone(ctx context.Context, userID, override string) string {
	if override != "" {
		return override
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if !errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("failed to load user timezone", zap.String("user_id", userID), zap.Error(err))
		}
		return s.defaultTimezone
	}

	if user.Timezone.Selected == "" {
		return s.defaultTimezone
	}
	if _, err := time.LoadLocation(user.Timezone.Selected); err != nil {
		return s.defaultTimezone
	}
	return user.Timezone.Selected
}

func (s *service) preferences(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := s.userRepo.GetPreferences(ctx, &userRepo.GetPreferencesInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrPreferencesNotFound) {
			return models.DefaultPreferences(), nil
		}
		return nil, err
	}
	return prefs, nil
}

// check runs struct validation and maps failures onto the package errors
func (s *service) check(input any) error {
	if input == nil {
		return ErrInvalidInput
	}
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Tag() {
	case "timezone":
		return fmt.Errorf("%w: %v", ErrInvalidTimezone, fieldErr.Value())
	case "datetime":
		return fmt.Errorf("%w: %v", ErrInvalidDate, fieldErr.Value())
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidInput, fieldErr.Field(), fieldErr.Tag())
	}
}

func validateDrinks(drinks models.Drinks) error {
	for key, count := range drinks {
		if !key.IsValid() {
			return fmt.Errorf("%w: %s", ErrInvalidDrink, key)
		}
		if count < 0 {
			return ErrInvalidCount
		}
	}
	return nil
}

func summarize(session *models.DrinkingSession, prefs *models.Preferences) *SessionSummary {
	units := calendar.CalculateTotalUnits(session.Drinks, prefs)
	color := calendar.ColorForUnits(units, prefs)
	if session.Blackout {
		color = models.ColorBlackout
	}
	return &SessionSummary{
		Session:  session,
		Units:    units,
		ColorTag: color,
	}
}
