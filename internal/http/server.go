package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/core"
	appweb "fintrack/web"

	"github.com/go-chi/chi/v5"
)

// Store is the transaction persistence contract the handlers depend
// on. The concrete SQLite repository is injected once at construction;
// handlers never open their own connections.
type Store interface {
	Insert(ctx context.Context, t core.Transaction) (core.Transaction, error)
	ListAll(ctx context.Context) ([]core.Transaction, error)
	Update(ctx context.Context, id string, patch core.TransactionPatch) (core.Transaction, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// EventPublisher emits transaction change events. May be nil when no
// broker is configured.
type EventPublisher interface {
	Publish(ctx context.Context, action, id string) error
}

type Server struct {
	http.Server
	templates    *template.Template
	store        Store
	events       EventPublisher
	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run
// http.Server. events may be nil.
func NewServer(addr string, store Store, events EventPublisher) *Server {
	r := chi.NewRouter()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: r,
		},
		store:       store,
		events:      events,
		rateLimiter: newRateLimiter(),
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	r.Use(s.withRequestContext)

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		r.Handle("/static/*", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	r.Get("/", s.handleIndex)
	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", s.handleListTransactions)
		r.Post("/", s.handleCreateTransaction)
		r.Get("/summary", s.handleSummary)
		r.Put("/{id}", s.handleUpdateTransaction)
		r.Delete("/{id}", s.handleDeleteTransaction)
	})

	return s
}

// withRequestContext adds security headers, rate limiting of mutating
// requests, and request logging to every response.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ip := clientIP(r)

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", ip,
			"user_agent", r.Header.Get("User-Agent"))

		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			if !s.rateLimiter.allow(ip) {
				slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", ip, "method", r.Method, "url", r.URL.Path)
				w.Header().Set("Retry-After", "60")
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://cdn.jsdelivr.net; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", ip)
	})
}

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// publish emits a change event if a publisher is configured. Failures
// are logged and never surfaced to the client; the write has already
// been persisted.
func (s *Server) publish(ctx context.Context, action, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"error", err, "action", action, "id", id)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("store unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Categories      []string
		DefaultCategory string
	}{
		Categories:      core.Categories,
		DefaultCategory: core.DefaultCategory,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
