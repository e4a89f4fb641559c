package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/langgpt/internal/common"
	"github.com/dmitrijs2005/langgpt/internal/logging"
	"github.com/dmitrijs2005/langgpt/internal/server/models"
	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithLogging logs every request with its status and duration. Each request
// gets an id, echoed back in X-Request-ID.
func WithLogging(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, requestID)
		r = r.WithContext(logging.WithRequestID(r.Context(), requestID))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// CORS allows browser clients from allowedOrigins ("*" for any).
func CORS(allowedOrigins string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed := originAllowed(allowedOrigins, origin); allowed != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-KEY")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func originAllowed(allowed, origin string) string {
	if origin == "" {
		return ""
	}
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		if o == "*" || o == origin {
			return origin
		}
	}
	return ""
}

type userKey struct{}

// UserFromContext returns the user attached by RequireUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey{}).(*models.User)
	return u, ok
}

// TokenValidator resolves bearer tokens.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// RequireUser rejects requests without a valid bearer token and stores the
// resolved user in the request context.
func RequireUser(v TokenValidator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := v.ValidateToken(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get(common.AuthorizationHeaderName)
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
