package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"remodel-checklist/pkg/gcalendar"
	"remodel-checklist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Checklist domain
	templatesPath   string
	sessionTTL      time.Duration
	sessionCapacity int
	rateLimitPerMin int

	// Google Calendar (optional)
	calendar   *gcalendar.Client
	calendarID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Checklist domain
	TemplatesPath   string
	SessionTTL      time.Duration
	SessionCapacity int
	RateLimitPerMin int

	// Google Calendar (optional)
	Calendar   *gcalendar.Client
	CalendarID string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		templatesPath:   cfg.TemplatesPath,
		sessionTTL:      cfg.SessionTTL,
		sessionCapacity: cfg.SessionCapacity,
		rateLimitPerMin: cfg.RateLimitPerMin,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionCapacity <= 0 {
		return errors.New("session capacity must be positive")
	}
	return nil
}
