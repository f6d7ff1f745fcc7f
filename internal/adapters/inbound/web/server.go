// Package web serves the browser interface and the JSON API. It is a thin
// consumer of the analysis core: every request runs one independent, pure
// analysis, so no coordination between requests is needed.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/FeMonky/Impact-Prognasticator/internal/application"
)

// Server hosts the HTML form and the JSON API.
type Server struct {
	svc    *application.AnalyzeService
	log    *logrus.Logger
	router *mux.Router
}

// NewServer wires routes and middleware around an AnalyzeService.
func NewServer(svc *application.AnalyzeService, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	s := &Server{svc: svc, log: log, router: mux.NewRouter()}

	limiter := newIPRateLimiter(rate.Limit(5), 10)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(limiter.middleware)
	api.Use(s.logMiddleware)

	api.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	api.HandleFunc("/materials", s.handleMaterials).Methods(http.MethodGet)
	api.HandleFunc("/impacts", s.handleImpacts).Methods(http.MethodGet)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	return s
}

// Handler exposes the configured router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("starting web interface")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.log.Info("shutting down web interface")
	return server.Shutdown(shutdownCtx)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
