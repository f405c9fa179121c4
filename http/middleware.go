package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/documind"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id. An incoming value is reused.
const RequestIDHeader = "X-Request-ID"

type contextKey int

const claimsContextKey contextKey = iota + 1

// claimsFromContext returns the verified token claims attached by requireAuth.
func claimsFromContext(ctx context.Context) *documind.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*documind.Claims)
	return claims
}

// requireAuth verifies the bearer token before next runs, so unauthenticated
// requests are rejected without reading the body.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, &errorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := s.Tokens.VerifyToken(token)
		if err != nil {
			s.Error(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// statusRecorder captures the status code and body size for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// logRequests assigns a request id and logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w}
		begin := time.Now()
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		s.logger().InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(begin),
			"request_id", id,
		)
	})
}
