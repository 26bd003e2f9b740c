package calendar

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kiroku/internal/services/calendar Service

import (
	"context"
)

// Service manages per-user calendar views
type Service interface {
	// OpenCalendar opens the user's calendar on the current month
	OpenCalendar(ctx context.Context, input *OpenCalendarInput) (*CalendarView, error)

	// PreviousMonth moves an open calendar one month back
	PreviousMonth(ctx context.Context, input *NavigateInput) (*CalendarView, error)

	// NextMonth moves an open calendar one month forward, never past today
	NextMonth(ctx context.Context, input *NavigateInput) (*CalendarView, error)

	// CurrentView renders an open calendar without moving it
	CurrentView(ctx context.Context, input *NavigateInput) (*CalendarView, error)

	// CloseCalendar tears down a user's calendar view
	CloseCalendar(ctx context.Context, input *CloseCalendarInput) error

	// GetMonth computes one month of a calendar without opening a view
	GetMonth(ctx context.Context, input *GetMonthInput) (*CalendarView, error)

	// Close tears down every open view
	Close() error
}
