package portal

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/monitoring"
	"github.com/caresuite/hms-portal/pkg/types"
)

type contextKey string

const contextKeyClaims contextKey = "user_claims"

// claimsFromContext returns the authenticated claims set by the auth
// middleware, or nil for unauthenticated requests.
func claimsFromContext(ctx context.Context) *types.UserClaims {
	claims, _ := ctx.Value(contextKeyClaims).(*types.UserClaims)
	return claims
}

// requestIDMiddleware tags each request with a request id. The id is
// stored under the logger's context key so WithContext-derived log
// entries pick it up.
func (s *Service) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), logger.ContextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs every request and records HTTP metrics
func (s *Service) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		s.logger.HTTPRequest(r.Context(), r.Method, r.URL.Path, r.UserAgent(), r.RemoteAddr, recorder.status, duration.Milliseconds(), nil)
		monitoring.RecordHTTPRequest(r.Method, r.URL.Path, recorder.status, duration)
	})
}

// authMiddleware validates the bearer token and stores the claims in
// the request context. Health and metrics endpoints stay open.
func (s *Service) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == s.config.Monitoring.HealthPath || r.URL.Path == s.config.Monitoring.MetricsPath {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			monitoring.RecordAuthAttempt("missing")
			s.writeError(w, http.StatusUnauthorized, types.NewAuthenticationError(types.ErrCodeTokenMissing, "authorization header required"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			monitoring.RecordAuthAttempt("malformed")
			s.writeError(w, http.StatusUnauthorized, types.NewAuthenticationError(types.ErrCodeTokenInvalid, "bearer token required"))
			return
		}

		claims, err := s.tokenValidator.ValidateJWT(tokenString)
		if err != nil {
			monitoring.RecordAuthAttempt("invalid")
			s.logger.Security("token_rejected", "", map[string]interface{}{"error": err.Error()})
			s.writeError(w, http.StatusUnauthorized, types.NewAuthenticationError(types.ErrCodeTokenInvalid, "invalid token"))
			return
		}

		monitoring.RecordAuthAttempt("ok")
		if !claims.Role.Valid() {
			// Unknown roles stay authenticated; every filter
			// downstream denies them.
			s.logger.Security("unknown_role", claims.UserID, map[string]interface{}{"role": string(claims.Role)})
		}
		ctx := context.WithValue(r.Context(), contextKeyClaims, claims)
		ctx = context.WithValue(ctx, logger.ContextKeyUserID, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimitMiddleware applies per-user rate limits after auth
func (s *Service) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.config.RateLimit.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		claims := claimsFromContext(r.Context())
		if claims != nil && !s.rateLimiter.Allow(claims.UserID) {
			s.logger.Security("rate_limit_exceeded", claims.UserID, nil)
			s.writeError(w, http.StatusTooManyRequests, types.NewValidationError("RATE_001", "rate limit exceeded", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
