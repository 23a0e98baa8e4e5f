package server

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/alfagnish/userbook/internal/config"
	"github.com/alfagnish/userbook/internal/handlers"
	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// New creates a fully-configured chi router with the page and mutation
// routes, middleware, and handlers wired together.
func New(cfg *config.Config, st store.Store, fsys fs.FS, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	// Preflights pass through to the router so unknown routes still answer 404.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST"},
		AllowedHeaders:     []string{"*"},
		MaxAge:             300,
		OptionsPassthrough: true,
	}))
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// ── Handlers ────────────────────────────────────────────
	pagesH := handlers.NewPagesHandler(fsys, st, log)
	usersH := handlers.NewUsersHandler(st, cfg.MaxBodyBytes, log)

	pagesH.Routes(r)
	usersH.Routes(r)

	// Unknown paths and known paths with the wrong method are both 404.
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	return r
}

// requestLogger returns middleware that logs each HTTP request with
// method, path, status code, and duration.
func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   status,
				"duration": time.Since(start).Round(time.Millisecond).String(),
			}).Info("request")
		})
	}
}
