package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/paperpress"
	"github.com/fwojciec/paperpress/convert"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// ArticleConverter runs the conversion pipeline for one URL.
type ArticleConverter interface {
	Convert(ctx context.Context, url string) (*convert.Result, error)
}

// Server exposes the conversion pipeline over HTTP.
type Server struct {
	converter ArticleConverter
	checker   paperpress.URLChecker
	tokens    paperpress.TokenIssuer
	logger    *slog.Logger
	version   string
	limiter   *rate.Limiter
	router    *chi.Mux
	server    *http.Server
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithVersion sets the version string reported by the liveness endpoint.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		s.version = v
	}
}

// WithRequestLimit caps the overall request rate. Requests beyond the
// burst are rejected with 429 rather than queued, since a conversion holds
// resources for its whole duration.
func WithRequestLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewServer creates a Server wiring the given collaborators into the HTTP
// surface.
func NewServer(converter ArticleConverter, checker paperpress.URLChecker, tokens paperpress.TokenIssuer, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		converter: converter,
		checker:   checker,
		tokens:    tokens,
		logger:    logger,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.throttle)

	r.Get("/", s.handleRoot)
	r.Post("/check-url", s.handleCheckURL)
	r.Post("/convert", s.handleConvert)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server on addr until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// urlRequest is the body of /convert and /check-url.
type urlRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"message": "paperpress article-to-PDF service is running",
		"version": s.version,
	})
}

func (s *Server) handleCheckURL(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLRequest(w, r)
	if !ok {
		return
	}

	status, err := s.checker.Check(r.Context(), req.URL)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"accessible": true,
		"statusCode": status,
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLRequest(w, r)
	if !ok {
		return
	}

	result, err := s.converter.Convert(r.Context(), req.URL)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token := s.tokens.Issue(req.URL)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=article.pdf`)
	w.Header().Set("X-Download-Token", token.Token)
	w.Header().Set("X-Expires-In", token.ExpiresIn)
	w.Header().Set("X-Content-Hash", fmt.Sprintf("%016x", xxhash.Sum64(result.PDF)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}

func (s *Server) decodeURLRequest(w http.ResponseWriter, r *http.Request) (urlRequest, bool) {
	var req urlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, paperpress.Errorf(paperpress.EINVALID, "invalid request body: %v", err))
		return req, false
	}
	if req.URL == "" {
		s.respondError(w, r, paperpress.Errorf(paperpress.EINVALID, "url required"))
		return req, false
	}
	return req, true
}

// respondError maps application error codes to HTTP statuses: the caller's
// problems (bad input, unreachable page) are 400, everything else is 500.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := paperpress.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case paperpress.EINVALID, paperpress.EUNAVAILABLE:
		status = http.StatusBadRequest
	case paperpress.ENOTFOUND:
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "code", code, "err", err)
	}

	s.respondJSON(w, status, map[string]any{
		"error": paperpress.ErrorMessage(err),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// throttle rejects requests beyond the configured rate with 429. A nil
// limiter disables throttling.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.respondJSON(w, http.StatusTooManyRequests, map[string]any{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests logs one line per request with the structured logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(begin),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
