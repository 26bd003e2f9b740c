package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/kiroku/internal/metrics"
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// view is one open calendar. The watcher goroutine keeps the loader in
// sync with live session and preference changes until cancel is called.
type view struct {
	mu      sync.Mutex
	loader  *Loader
	visible time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	userRepo    userRepo.Repository
	clock       clockwork.Clock
	logger      *zap.Logger
	validate    *validator.Validate

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	views  map[string]*view
	closed bool
}

// New creates a new calendar service
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

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &service{
		sessionRepo: cfg.SessionRepo,
		userRepo:    cfg.UserRepo,
		clock:       cfg.Clock,
		logger:      logger.Named("calendar"),
		validate:    validator.New(),
		ctx:         ctx,
		cancel:      cancel,
		views:       make(map[string]*view),
	}, nil
}

// OpenCalendar opens the user's calendar, or renders the already open one
func (s *service) OpenCalendar(ctx context.Context, input *OpenCalendarInput) (*CalendarView, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrServiceClosed
	}
	if existing, ok := s.views[input.UserID]; ok {
		s.mu.Unlock()
		return s.render(input.UserID, existing), nil
	}
	s.mu.Unlock()

	v, err := s.buildView(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.stopView(v)
		return nil, ErrServiceClosed
	}
	if existing, ok := s.views[input.UserID]; ok {
		// Lost a race with a concurrent open
		s.mu.Unlock()
		s.stopView(v)
		return s.render(input.UserID, existing), nil
	}
	s.views[input.UserID] = v
	s.mu.Unlock()

	metrics.OpenCalendars.Inc()
	s.logger.Debug("calendar opened", zap.String("user_id", input.UserID))

	return s.render(input.UserID, v), nil
}

func (s *service) buildView(ctx context.Context, userID string) (*view, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	prefs, err := s.preferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	trackingStart, err := s.trackingStart(ctx, userID)
	if err != nil {
		return nil, err
	}

	loader, err := NewLoader(&LoaderConfig{
		SessionRepo:   s.sessionRepo,
		Logger:        s.logger,
		User:          user,
		TrackingStart: trackingStart,
		Preferences:   prefs,
	})
	if err != nil {
		return nil, err
	}

	// Subscribe before the first load so no change slips between the two
	watchCtx, cancel := context.WithCancel(s.ctx)
	sessionSub, err := s.sessionRepo.Subscribe(watchCtx, &sessionRepo.SubscribeInput{UserID: userID})
	if err != nil {
		cancel()
		return nil, err
	}
	prefSub, err := s.userRepo.SubscribePreferences(watchCtx, &userRepo.SubscribePreferencesInput{UserID: userID})
	if err != nil {
		sessionSub.Close()
		cancel()
		return nil, err
	}

	now := s.clock.Now().In(loader.Location())
	if err := loader.Init(ctx, now); err != nil {
		sessionSub.Close()
		prefSub.Close()
		cancel()
		return nil, err
	}

	v := &view{
		loader:  loader,
		visible: MonthStart(now, loader.Location()),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go s.watch(watchCtx, v, sessionSub, prefSub)

	return v, nil
}

func (s *service) watch(ctx context.Context, v *view, sessionSub *sessionRepo.Subscription, prefSub *userRepo.PreferencesSubscription) {
	defer close(v.done)
	defer sessionSub.Close()
	defer prefSub.Close()

	changes := sessionSub.Changes
	prefChanges := prefSub.Changes
	for {
		select {
		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			v.loader.ApplyChange(change)
		case prefs, ok := <-prefChanges:
			if !ok {
				prefChanges = nil
				continue
			}
			v.loader.ApplyPreferences(prefs)
		case <-ctx.Done():
			return
		}
	}
}

func (s *service) stopView(v *view) {
	v.cancel()
	<-v.done
}

func (s *service) getView(userID string) (*view, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrServiceClosed
	}
	v, ok := s.views[userID]
	if !ok {
		return nil, ErrCalendarNotOpen
	}
	return v, nil
}

// PreviousMonth loads the month before the loaded range when the view gets
// close to it, then moves the view back one month
func (s *service) PreviousMonth(ctx context.Context, input *NavigateInput) (*CalendarView, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	v, err := s.getView(input.UserID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if v.visible.After(v.loader.MinMonth()) {
		if _, err := v.loader.LoadPreviousIfNeeded(ctx, v.visible); err != nil {
			v.mu.Unlock()
			return nil, err
		}
		v.visible = v.visible.AddDate(0, -1, 0)
	}
	v.mu.Unlock()

	return s.render(input.UserID, v), nil
}

// NextMonth moves the view forward one month, stopping at the current month
func (s *service) NextMonth(ctx context.Context, input *NavigateInput) (*CalendarView, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	v, err := s.getView(input.UserID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	current := MonthStart(s.clock.Now(), v.loader.Location())
	if v.visible.Before(current) {
		v.visible = v.visible.AddDate(0, 1, 0)
	}
	v.mu.Unlock()

	return s.render(input.UserID, v), nil
}

// CurrentView renders an open calendar as it is
func (s *service) CurrentView(ctx context.Context, input *NavigateInput) (*CalendarView, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	v, err := s.getView(input.UserID)
	if err != nil {
		return nil, err
	}

	return s.render(input.UserID, v), nil
}

// CloseCalendar tears down the user's view and its subscriptions
func (s *service) CloseCalendar(ctx context.Context, input *CloseCalendarInput) error {
	if err := s.check(input); err != nil {
		return err
	}

	s.mu.Lock()
	v, ok := s.views[input.UserID]
	if ok {
		delete(s.views, input.UserID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrCalendarNotOpen
	}

	s.stopView(v)
	metrics.OpenCalendars.Dec()
	s.logger.Debug("calendar closed", zap.String("user_id", input.UserID))
	return nil
}

// Close tears down every open view. The service rejects new views afterwards.
func (s *service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	views := s.views
	s.views = make(map[string]*view)
	s.mu.Unlock()

	s.cancel()
	for _, v := range views {
		<-v.done
		metrics.OpenCalendars.Dec()
	}

	s.logger.Info("calendar service closed", zap.Int("views", len(views)))
	return nil
}

// GetMonth aggregates one month straight from the store
func (s *service) GetMonth(ctx context.Context, input *GetMonthInput) (*CalendarView, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	loc := user.Location()
	month, err := time.ParseInLocation(models.MonthFormat, input.Month, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMonth, input.Month)
	}

	// Sessions are bucketed in their own zone, so widen the month range
	from, to := PadRange(month, month.AddDate(0, 1, 0))
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

	trackingStart, err := s.trackingStart(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	minDate := user.CreatedAt.In(loc)
	if trackingStart != nil {
		minDate = trackingStart.In(loc)
	}
	minMonth := earliestMonth(MonthStart(user.CreatedAt, loc), trackingStart, loc)

	now := s.clock.Now().In(loc)
	current := MonthStart(now, loc)

	return &CalendarView{
		UserID:      input.UserID,
		Month:       input.Month,
		Days:        daysWithPrefix(Aggregate(output.Sessions, prefs), input.Month),
		MinDate:     minDate.Format(models.DateFormat),
		MaxDate:     now.Format(models.DateFormat),
		HasPrevious: month.After(minMonth),
		HasNext:     month.Before(current),
	}, nil
}

func (s *service) render(userID string, v *view) *CalendarView {
	v.mu.Lock()
	visible := v.visible
	v.mu.Unlock()

	loc := v.loader.Location()
	now := s.clock.Now().In(loc)

	return &CalendarView{
		UserID:      userID,
		Month:       visible.Format(models.MonthFormat),
		Days:        v.loader.MonthDays(visible),
		MinDate:     v.loader.MinDate().Format(models.DateFormat),
		MaxDate:     now.Format(models.DateFormat),
		HasPrevious: visible.After(v.loader.MinMonth()),
		HasNext:     visible.Before(MonthStart(now, loc)),
	}
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

func (s *service) trackingStart(ctx context.Context, userID string) (*time.Time, error) {
	earliest, err := s.sessionRepo.GetEarliestSession(ctx, &sessionRepo.GetEarliestSessionInput{UserID: userID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	start := earliest.StartTime
	return &start, nil
}

func (s *service) check(input any) error {
	if input == nil {
		return ErrInvalidInput
	}
	if err := s.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 && validationErrs[0].Tag() == "datetime" {
			return fmt.Errorf("%w: %v", ErrInvalidMonth, validationErrs[0].Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
