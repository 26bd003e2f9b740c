package api

import (
	"crypto/subtle"

	"github.com/KirkDiggler/kiroku/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func (s *Server) registerRoutes() {
	s.echo.Use(s.requestLogger())
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.errorHandling())

	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	v1 := s.echo.Group("/api/v1")
	if s.apiKey != "" {
		v1.Use(middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			Validator: func(key string, c echo.Context) (bool, error) {
				return subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) == 1, nil
			},
		}))
	}

	v1.GET("/users/:user/calendar", s.handleGetCalendar)
	v1.GET("/users/:user/days/:date", s.handleGetDay)
	v1.GET("/users/:user/sessions/:id", s.handleGetSession)
	v1.DELETE("/users/:user/sessions/:id", s.handleDeleteSession)
	v1.GET("/users/:user/tracking-start", s.handleGetTrackingStart)
	v1.POST("/users/:user/timezone-fix", s.handleTimezoneFix)
	v1.GET("/users/:user/notices/:notice", s.handleGetNotice)
	v1.POST("/users/:user/notices/:notice/dismiss", s.handleDismissNotice)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			s.logger.Info("request", fields...)
			return nil
		},
	})
}
