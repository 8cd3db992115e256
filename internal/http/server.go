// Package http serves the Expense Store's JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spend/internal/core"
	"spend/internal/store"
)

type Server struct {
	http.Server

	expenses   store.ExpenseLister
	getter     store.ExpenseGetter
	writer     store.ExpenseWriter
	categories store.CategoryLister
	summaries  store.SummaryReader

	rateLimiter  *rateLimiter
	summaryCache *lruCache[core.Summary]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes, returning a ready-to-run http.Server. Reads
// go straight to the backend; writes go through writer so event publishing
// stays out of the handlers.
func NewServer(addr string, backend store.Store, writer store.ExpenseWriter) *Server {
	if writer == nil {
		writer = backend
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		expenses:         backend,
		getter:           backend,
		writer:           writer,
		categories:       backend,
		summaries:        backend,
		rateLimiter:      newRateLimiter(),
		summaryCache:     newLRUCache[core.Summary](100, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/categories", s.withRequestLogging(s.handleListCategories))
	mux.HandleFunc("GET /api/expenses", s.withRequestLogging(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.withRequestLogging(s.handleCreateExpense))
	mux.HandleFunc("GET /api/expenses/{id}", s.withRequestLogging(s.handleGetExpense))
	mux.HandleFunc("PUT /api/expenses/{id}", s.withRequestLogging(s.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.withRequestLogging(s.handleDeleteExpense))
	mux.HandleFunc("GET /api/reports/summary", s.withRequestLogging(s.handleSummary))

	return s
}

// withRequestLogging adds request ids, logging, rate limiting on mutations,
// and baseline security headers.
func (s *Server) withRequestLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.DebugContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		if isMutation(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccessMessage(w, http.StatusOK, "Expense Tracker API is running")
}

// startCacheCleanup periodically drops expired summary cache entries.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.summaryCache.CleanExpired(); cleaned > 0 {
				slog.Debug("Summary cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.stopCacheCleanup != nil {
			close(s.stopCacheCleanup)
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
