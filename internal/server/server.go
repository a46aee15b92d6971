// Package server exposes the Armstrong checker over HTTP. Every evaluation
// goes through the orchestrator and is recorded in a session shared by all
// clients.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/config"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/logging"
	"github.com/agbru/armcalc/internal/orchestration"
)

// Server is the HTTP front end of the checker. It wraps an http.Server
// whose handler accepts both HTTP/1.1 and cleartext HTTP/2.
type Server struct {
	orchestrator   *orchestration.Orchestrator
	factory        armstrong.VariantFactory
	session        *orchestration.Session
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	metrics        *Metrics
	timeouts       Timeouts
	// measuring holds one token while a request times the checkers, so
	// concurrent requests never measure in parallel.
	measuring chan struct{}
}

// NewServer creates a Server for the given orchestrator and configuration.
//
// Parameters:
//   - o: The orchestrator that runs evaluations.
//   - cfg: The application configuration (port, default repeat, reference set).
//   - opts: Optional functional options (logger, session, timeouts, limits).
//
// Returns:
//   - *Server: The configured server, not yet listening.
func NewServer(o *orchestration.Orchestrator, cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		orchestrator:   o,
		factory:        armstrong.GlobalFactory(),
		session:        orchestration.NewSession(),
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		securityConfig: DefaultSecurityConfig(),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
		measuring:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/evaluate", s.wrapWithMiddleware(s.handleEvaluate))
	mux.HandleFunc("/reference", s.wrapWithMiddleware(s.handleReference))
	mux.HandleFunc("/history", s.wrapWithMiddleware(s.handleHistory))
	mux.HandleFunc("/variants", s.wrapWithMiddleware(s.handleVariants))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h2c.NewHandler(mux, &http2.Server{IdleTimeout: s.timeouts.IdleTimeout}),
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}
	return s
}

// Handler returns the root handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Session returns the history shared by all requests.
func (s *Server) Session() *orchestration.Session {
	return s.session
}

// wrapWithMiddleware applies Security -> RateLimit -> Logging -> Metrics.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	wrapped = RateLimitMiddleware(s.rateLimiter, wrapped)
	wrapped = SecurityMiddleware(s.securityConfig, wrapped)
	return wrapped
}

// Start listens on the configured port and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return apperrors.WrapError(err, "server failed to listen on %s", s.httpServer.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the shutdown timeout. The serve loop and the shutdown
// watcher run in one errgroup so a listener failure also stops the watcher.
//
// Parameters:
//   - ctx: Cancel it to stop the server (the app binds it to SIGINT/SIGTERM).
//   - ln: The listener to serve on. Serve takes ownership of it.
//
// Returns:
//   - error: A serve or shutdown failure; nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		s.logger.Println("Available endpoints:")
		s.logger.Println("  GET /evaluate?n=<number>&repeat=<runs>")
		s.logger.Println("  GET /reference?repeat=<runs>&set=<canonical|classic>")
		s.logger.Println("  GET /history")
		s.logger.Println("  GET /variants")
		s.logger.Println("  GET /health")
		s.logger.Println("  GET /metrics")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.WrapError(err, "server failed")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Println("Shutdown requested, draining connections...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.WrapError(err, "failed to gracefully shutdown server")
		}
		s.logger.Println("Server stopped gracefully")
		return nil
	})
	return g.Wait()
}
