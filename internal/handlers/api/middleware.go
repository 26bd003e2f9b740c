package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/kiroku/internal/services/messaging"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusByCode maps error codes to HTTP statuses. Unlisted codes are 500.
var statusByCode = map[messaging.ErrorCode]int{
	messaging.CodeSessionNotFound:   http.StatusNotFound,
	messaging.CodeUserNotFound:      http.StatusNotFound,
	messaging.CodeRequestNotFound:   http.StatusNotFound,
	messaging.CodeCalendarNotOpen:   http.StatusNotFound,
	messaging.CodeNoOngoingSession:  http.StatusConflict,
	messaging.CodeAlreadyRegistered: http.StatusConflict,
	messaging.CodeAlreadyFriends:    http.StatusConflict,
	messaging.CodeRequestSent:       http.StatusConflict,
	messaging.CodeNotFriends:        http.StatusConflict,
	messaging.CodeInvalidDrink:      http.StatusBadRequest,
	messaging.CodeInvalidTimezone:   http.StatusBadRequest,
	messaging.CodeInvalidDate:       http.StatusBadRequest,
	messaging.CodeDateInFuture:      http.StatusBadRequest,
	messaging.CodeCannotFriendSelf:  http.StatusBadRequest,
	messaging.CodeInvalidInput:      http.StatusBadRequest,
	messaging.CodeUnavailable:       http.StatusServiceUnavailable,
}

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Code    messaging.ErrorCode `json:"code"`
	Title   string              `json:"title"`
	Message string              `json:"message"`
}

// errorHandling turns service errors into localized JSON error bodies.
// echo.HTTPErrors pass through untouched.
func (s *Server) errorHandling() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			locale := messaging.ParseLocale(c.Request().Header.Get("Accept-Language"))
			msg, mapErr := s.messagingService.GetErrorMessage(c.Request().Context(), &messaging.GetErrorMessageInput{
				Err:    err,
				Locale: locale,
			})
			if mapErr != nil {
				s.logger.Error("failed to map error", zap.Error(mapErr), zap.NamedError("cause", err))
				return echo.NewHTTPError(http.StatusInternalServerError)
			}

			status, ok := statusByCode[msg.Code]
			if !ok {
				status = http.StatusInternalServerError
			}

			if status >= http.StatusInternalServerError {
				s.logger.Error("request failed",
					zap.String("path", c.Request().URL.Path),
					zap.String("code", string(msg.Code)),
					zap.Error(err))
			}

			if err := c.JSON(status, errorResponse{Code: msg.Code, Title: msg.Title, Message: msg.Message}); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}
