package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/messaging"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// pinger is the part of the Redis client the health check needs
type pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Config holds the dependencies of the HTTP API
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// APIKey protects /api/v1 when set
	APIKey string

	SessionService   session.Service
	CalendarService  calendar.Service
	UserService      user.Service
	MessagingService messaging.Service
	Redis            pinger
	Clock            clockwork.Clock
	Logger           *zap.Logger
}

// Server is the JSON HTTP API
type Server struct {
	echo             *echo.Echo
	addr             string
	apiKey           string
	sessionService   session.Service
	calendarService  calendar.Service
	userService      user.Service
	messagingService messaging.Service
	redis            pinger
	clock            clockwork.Clock
	logger           *zap.Logger
	startTime        time.Time
}

// requestValidator plugs validator/v10 into echo's Validate
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// NewServer builds the echo instance and registers the routes
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionService == nil || cfg.CalendarService == nil || cfg.UserService == nil || cfg.MessagingService == nil {
		return nil, errors.New("all services are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	srv := &Server{
		echo:             e,
		addr:             cfg.Addr,
		apiKey:           cfg.APIKey,
		sessionService:   cfg.SessionService,
		calendarService:  cfg.CalendarService,
		userService:      cfg.UserService,
		messagingService: cfg.MessagingService,
		redis:            cfg.Redis,
		clock:            clock,
		logger:           logger.Named("api"),
		startTime:        clock.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router directly
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
