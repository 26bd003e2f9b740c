package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/kiroku/internal/metrics"
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadResult tells what a call to LoadPreviousIfNeeded did
type LoadResult string

const (
	// LoadResultLoaded means the previous month was fetched and merged
	LoadResultLoaded LoadResult = "loaded"

	// LoadResultNoop means nothing had to be fetched
	LoadResultNoop LoadResult = "noop"

	// LoadResultStale means the fetch was superseded by a newer request
	LoadResultStale LoadResult = "stale"
)

// LoaderConfig holds what a Loader needs to know about its user
type LoaderConfig struct {
	SessionRepo sessionRepo.Repository
	Logger      *zap.Logger

	// User owns the calendar; its creation date bounds loading
	User *models.User

	// TrackingStart is the start of the user's first session, nil without sessions
	TrackingStart *time.Time

	// Preferences are the unit and colour tables to aggregate with
	Preferences *models.Preferences
}

// Loader keeps the sessions of a calendar view in memory, fetching older
// months lazily as the visible month approaches the earliest loaded one.
type Loader struct {
	repo   sessionRepo.Repository
	logger *zap.Logger
	userID string
	loc    *time.Location
	group  singleflight.Group

	mu            sync.Mutex
	createdAt     time.Time
	createdMonth  time.Time
	trackingStart *time.Time
	loadedFrom    time.Time
	seq           uint64
	sessions      map[string]*models.DrinkingSession
	deleted       map[string]struct{}
	prefs         *models.Preferences
	days          map[string]*models.DayAggregate
}

// NewLoader creates a loader with nothing loaded yet
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.User == nil {
		return nil, ErrNilLoaderUser
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	prefs := cfg.Preferences
	if prefs == nil {
		prefs = models.DefaultPreferences()
	}

	loc := cfg.User.Location()
	l := &Loader{
		repo:         cfg.SessionRepo,
		logger:       logger,
		userID:       cfg.User.ID,
		loc:          loc,
		createdAt:    cfg.User.CreatedAt.In(loc),
		createdMonth: MonthStart(cfg.User.CreatedAt, loc),
		sessions:     make(map[string]*models.DrinkingSession),
		deleted:      make(map[string]struct{}),
		prefs:        prefs,
		days:         make(map[string]*models.DayAggregate),
	}
	if cfg.TrackingStart != nil {
		start := *cfg.TrackingStart
		l.trackingStart = &start
	}

	return l, nil
}

// MonthStart returns midnight of the first day of t's month in loc
func MonthStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// MonthDiff returns the number of calendar months from b to a
func MonthDiff(a, b time.Time) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Init loads the month containing visible and sets the cursor to it
func (l *Loader) Init(ctx context.Context, visible time.Time) error {
	month := MonthStart(visible, l.loc)

	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.mu.Unlock()

	sessions, err := l.fetch(ctx, month, month.AddDate(0, 1, 0))
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq < l.seq {
		return nil
	}
	l.merge(sessions)
	l.loadedFrom = month
	l.recompute()
	return nil
}

// LoadPreviousIfNeeded fetches the month before the cursor when visible is
// within one calendar month of it. It never fetches before the account was
// created or before the first recorded session, and a user without sessions
// never triggers a fetch. Results of a request that was overtaken by a newer
// one are dropped.
func (l *Loader) LoadPreviousIfNeeded(ctx context.Context, visible time.Time) (LoadResult, error) {
	l.mu.Lock()
	if l.loadedFrom.IsZero() || abs(MonthDiff(visible.In(l.loc), l.loadedFrom)) > 1 {
		l.mu.Unlock()
		return l.record(LoadResultNoop), nil
	}

	target := l.loadedFrom.AddDate(0, -1, 0)
	if !l.canLoad(target) {
		l.mu.Unlock()
		return l.record(LoadResultNoop), nil
	}

	l.seq++
	seq := l.seq
	to := l.loadedFrom
	l.mu.Unlock()

	sessions, err := l.fetch(ctx, target, to)
	if err != nil {
		metrics.MonthLoadsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq < l.seq {
		l.logger.Debug("discarding stale month load",
			zap.String("user_id", l.userID),
			zap.String("month", target.Format(models.MonthFormat)),
			zap.Uint64("seq", seq),
			zap.Uint64("latest_seq", l.seq))
		return l.record(LoadResultStale), nil
	}

	l.merge(sessions)
	if target.Before(l.loadedFrom) {
		l.loadedFrom = target
	}
	l.recompute()

	return l.record(LoadResultLoaded), nil
}

// canLoad must be called with mu held
func (l *Loader) canLoad(month time.Time) bool {
	if l.trackingStart == nil {
		return false
	}
	if month.Before(MonthStart(*l.trackingStart, l.loc)) {
		return false
	}
	return !month.Before(l.createdMonth)
}

func (l *Loader) record(result LoadResult) LoadResult {
	metrics.MonthLoadsTotal.WithLabelValues(string(result)).Inc()
	return result
}

// fetch collapses concurrent requests for the same range into one query. The
// month range is padded by ZoneSpread since sessions are bucketed in their own
// zone, and merge drops the overlap with earlier fetches.
func (l *Loader) fetch(ctx context.Context, month, next time.Time) ([]*models.DrinkingSession, error) {
	from, to := PadRange(month, next)
	key := from.Format(time.RFC3339) + "/" + to.Format(time.RFC3339)
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		output, err := l.repo.GetSessionsInRange(ctx, &sessionRepo.GetSessionsInRangeInput{
			UserID: l.userID,
			From:   from,
			To:     to,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load sessions for %s: %w", month.Format(models.MonthFormat), err)
		}
		return output.Sessions, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*models.DrinkingSession), nil
}

// merge must be called with mu held. Sessions already known through a live
// change, or deleted since, win over fetched copies.
func (l *Loader) merge(sessions []*models.DrinkingSession) {
	for _, session := range sessions {
		if _, ok := l.sessions[session.ID]; ok {
			continue
		}
		if _, ok := l.deleted[session.ID]; ok {
			continue
		}
		l.sessions[session.ID] = session.Clone()
	}
}

// recompute must be called with mu held
func (l *Loader) recompute() {
	all := make([]*models.DrinkingSession, 0, len(l.sessions))
	for _, session := range l.sessions {
		all = append(all, session)
	}
	l.days = Aggregate(all, l.prefs)
}

// ApplyChange merges a live session change and recomputes the aggregates
func (l *Loader) ApplyChange(change *models.SessionChange) {
	if change == nil || change.UserID != l.userID {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch change.Type {
	case models.SessionChangeSaved:
		if change.Session == nil {
			return
		}
		delete(l.deleted, change.SessionID)
		l.sessions[change.SessionID] = change.Session.Clone()
		if l.trackingStart == nil || change.Session.StartTime.Before(*l.trackingStart) {
			start := change.Session.StartTime
			l.trackingStart = &start
		}
	case models.SessionChangeDeleted:
		delete(l.sessions, change.SessionID)
		l.deleted[change.SessionID] = struct{}{}
	default:
		return
	}

	l.recompute()
}

// ApplyPreferences swaps the preferences and recomputes the aggregates
func (l *Loader) ApplyPreferences(prefs *models.Preferences) {
	if prefs == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.prefs = prefs
	l.recompute()
}

// MonthDays returns the aggregates of one month ordered by date
func (l *Loader) MonthDays(month time.Time) []*models.DayAggregate {
	prefix := month.In(l.loc).Format(models.MonthFormat)

	l.mu.Lock()
	defer l.mu.Unlock()

	return daysWithPrefix(l.days, prefix)
}

// LoadedFrom returns the first day of the earliest loaded month
func (l *Loader) LoadedFrom() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadedFrom
}

// MinMonth returns the earliest month the calendar may show and load
func (l *Loader) MinMonth() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	return earliestMonth(l.createdMonth, l.trackingStart, l.loc)
}

// earliestMonth is the later of the creation month and the tracking start
// month. Without sessions it is the creation month.
func earliestMonth(createdMonth time.Time, trackingStart *time.Time, loc *time.Location) time.Time {
	if trackingStart == nil {
		return createdMonth
	}
	tracking := MonthStart(*trackingStart, loc)
	if tracking.Before(createdMonth) {
		return createdMonth
	}
	return tracking
}

// MinDate is the tracking start, or the account creation without sessions
func (l *Loader) MinDate() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.trackingStart == nil {
		return l.createdAt
	}
	return l.trackingStart.In(l.loc)
}

// Location returns the zone months are cut in
func (l *Loader) Location() *time.Location {
	return l.loc
}

func daysWithPrefix(days map[string]*models.DayAggregate, prefix string) []*models.DayAggregate {
	out := make([]*models.DayAggregate, 0)
	for date, day := range days {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			copied := *day
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
