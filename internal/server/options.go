package server

import (
	"log"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/logging"
	"github.com/agbru/armcalc/internal/orchestration"
)

// Option configures a Server.
type Option func(*Server)

// Timeouts holds the HTTP server timeouts.
type Timeouts struct {
	// RequestTimeout bounds one evaluation or reference batch.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

// DefaultServerTimeouts returns the production timeouts.
func DefaultServerTimeouts() Timeouts {
	return Timeouts{
		RequestTimeout:  5 * time.Minute,
		ShutdownTimeout: 30 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Minute,
		IdleTimeout:     2 * time.Minute,
	}
}

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithStdLogger adapts a standard library logger.
func WithStdLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = logging.NewStdLoggerAdapter(l) }
}

// WithTimeouts replaces the default timeouts.
func WithTimeouts(t Timeouts) Option {
	return func(s *Server) { s.timeouts = t }
}

// WithSession shares an existing history with the server.
func WithSession(session *orchestration.Session) Option {
	return func(s *Server) { s.session = session }
}

// WithFactory sets the registry listed by /variants.
func WithFactory(f armstrong.VariantFactory) Option {
	return func(s *Server) { s.factory = f }
}

// WithRateLimiter sets a custom rate limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) { s.rateLimiter = rl }
}

// WithSecurityConfig sets a custom security configuration.
func WithSecurityConfig(cfg SecurityConfig) Option {
	return func(s *Server) { s.securityConfig = cfg }
}

// WithMaxRepeat caps the repeat parameter accepted by the API.
func WithMaxRepeat(maxRepeat int) Option {
	return func(s *Server) { s.securityConfig.MaxRepeat = maxRepeat }
}
