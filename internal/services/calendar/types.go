package calendar

import (
	"github.com/KirkDiggler/kiroku/internal/models"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config holds configuration for the calendar service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	UserRepo    userRepo.Repository

	Clock  clockwork.Clock
	Logger *zap.Logger
}

// OpenCalendarInput contains parameters for opening a calendar
type OpenCalendarInput struct {
	UserID string `validate:"required"`
}

// NavigateInput contains parameters for moving an open calendar
type NavigateInput struct {
	UserID string `validate:"required"`
}

// CloseCalendarInput contains parameters for closing a calendar
type CloseCalendarInput struct {
	UserID string `validate:"required"`
}

// GetMonthInput contains parameters for a one-off month computation
type GetMonthInput struct {
	UserID string `validate:"required"`

	// Month is in YYYY-MM
	Month string `validate:"required,datetime=2006-01"`
}

// CalendarView is one rendered month of a user's calendar
type CalendarView struct {
	UserID string `json:"user_id"`

	// Month is the visible month in YYYY-MM
	Month string `json:"month"`

	// Days holds the aggregates of the visible month ordered by date
	Days []*models.DayAggregate `json:"days"`

	// MinDate is the earliest day the calendar can show
	MinDate string `json:"min_date"`

	// MaxDate is today in the user's timezone
	MaxDate string `json:"max_date"`

	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}
