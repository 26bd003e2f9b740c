package api

import (
	"context"
	"net/http"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

func (s *Server) handleHealth(c echo.Context) error {
	body := map[string]any{
		"status": "ok",
		"uptime": s.clock.Since(s.startTime).Seconds(),
	}

	if s.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := s.redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":       "unhealthy",
				"failed_check": "redis",
				"error":        err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, body)
}

// handleGetCalendar returns one month of day aggregates. Without a month
// query parameter the current month in the user's timezone is used.
func (s *Server) handleGetCalendar(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		u, err := s.userService.GetUser(c.Request().Context(), &user.GetUserInput{UserID: c.Param("user")})
		if err != nil {
			return err
		}
		month = s.clock.Now().In(u.Location()).Format(models.MonthFormat)
	}

	view, err := s.calendarService.GetMonth(c.Request().Context(), &calendar.GetMonthInput{
		UserID: c.Param("user"),
		Month:  month,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// dayResponse is the JSON form of a day overview
type dayResponse struct {
	Date       string            `json:"date"`
	TotalUnits float64           `json:"total_units"`
	ColorTag   models.ColorTag   `json:"color_tag"`
	Sessions   []sessionResponse `json:"sessions"`
}

type sessionResponse struct {
	Session  *models.DrinkingSession `json:"session"`
	Units    float64                 `json:"units"`
	ColorTag models.ColorTag         `json:"color_tag"`
}

func (s *Server) handleGetDay(c echo.Context) error {
	overview, err := s.sessionService.GetDayOverview(c.Request().Context(), &session.GetDayOverviewInput{
		UserID: c.Param("user"),
		Date:   c.Param("date"),
	})
	if err != nil {
		return err
	}

	response := dayResponse{
		Date:       overview.Date,
		TotalUnits: overview.TotalUnits,
		ColorTag:   overview.ColorTag,
		Sessions:   make([]sessionResponse, 0, len(overview.Sessions)),
	}
	for _, summary := range overview.Sessions {
		response.Sessions = append(response.Sessions, sessionResponse{
			Session:  summary.Session,
			Units:    summary.Units,
			ColorTag: summary.ColorTag,
		})
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleGetSession(c echo.Context) error {
	summary, err := s.sessionService.GetSession(c.Request().Context(), &session.GetSessionInput{
		UserID:    c.Param("user"),
		SessionID: c.Param("id"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Session:  summary.Session,
		Units:    summary.Units,
		ColorTag: summary.ColorTag,
	})
}

func (s *Server) handleDeleteSession(c echo.Context) error {
	err := s.sessionService.DeleteSession(c.Request().Context(), &session.DeleteSessionInput{
		UserID:    c.Param("user"),
		SessionID: c.Param("id"),
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetTrackingStart(c echo.Context) error {
	output, err := s.sessionService.GetTrackingStartDate(c.Request().Context(), &session.GetTrackingStartDateInput{
		UserID: c.Param("user"),
	})
	if err != nil {
		return err
	}

	var start *string
	if output.StartDate != nil {
		formatted := output.StartDate.Format(models.DateFormat)
		start = &formatted
	}
	return c.JSON(http.StatusOK, map[string]*string{"start_date": start})
}

// timezoneFixRequest is the body of POST /timezone-fix
type timezoneFixRequest struct {
	OldTimezone string `json:"old_timezone" validate:"required,timezone"`
	NewTimezone string `json:"new_timezone" validate:"required,timezone"`
}

func (s *Server) handleTimezoneFix(c echo.Context) error {
	var req timezoneFixRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	output, err := s.sessionService.FixTimezone(c.Request().Context(), &session.FixTimezoneInput{
		UserID:      c.Param("user"),
		OldTimezone: req.OldTimezone,
		NewTimezone: req.NewTimezone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int{"fixed_count": output.FixedCount})
}

func (s *Server) handleGetNotice(c echo.Context) error {
	show, err := s.userService.ShouldShowNotice(c.Request().Context(), &user.ShouldShowNoticeInput{
		UserID: c.Param("user"),
		Notice: models.Notice(c.Param("notice")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"show": show})
}

func (s *Server) handleDismissNotice(c echo.Context) error {
	err := s.userService.DismissNotice(c.Request().Context(), &user.DismissNoticeInput{
		UserID: c.Param("user"),
		Notice: models.Notice(c.Param("notice")),
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
