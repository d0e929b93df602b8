package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/service"
)

type contextKey string

const (
	contextKeyBody    contextKey = "body"
	contextKeySession contextKey = "session"
)

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger     hclog.Logger
	Validator  *domain.Validation
	Sessions   service.AuthService
	corsConfig *CORSConfig
}

// CORSConfig holds configuration for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int  // Cache preflight requests
	AllowCredentials bool // Allow credentials like cookies
}

func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:           86400, // 24 hours
		AllowCredentials: true,
	}
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(
	logger hclog.Logger,
	validator *domain.Validation,
	sessions service.AuthService,
	corsConfig *CORSConfig) *Middleware {
	if corsConfig == nil {
		corsConfig = DefaultCORSConfig()
	}
	return &Middleware{
		Logger:     logger,
		Validator:  validator,
		Sessions:   sessions,
		corsConfig: corsConfig,
	}
}

// CORS wraps next with gorilla's CORS handler configured from the CORSConfig
func (m *Middleware) CORS(next http.Handler) http.Handler {
	opts := []handlers.CORSOption{
		handlers.AllowedOrigins(m.corsConfig.AllowedOrigins),
		handlers.AllowedMethods(m.corsConfig.AllowedMethods),
		handlers.AllowedHeaders(m.corsConfig.AllowedHeaders),
		handlers.MaxAge(m.corsConfig.MaxAge),
	}
	if m.corsConfig.AllowCredentials {
		opts = append(opts, handlers.AllowCredentials())
	}
	return handlers.CORS(opts...)(next)
}

// Recovery turns a panicking handler into a 500 and logs the stack
func (m *Middleware) Recovery(next http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(m.Logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})),
		handlers.PrintRecoveryStack(true),
	)(next)
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	})
}

// RequireSession authenticates the bearer token and adds the session to the context
func (m *Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		session, err := m.Sessions.Authenticate(r.Context(), token)
		if err != nil {
			m.Logger.Debug("Rejected request", "url", r.URL.Path, "error", err)
			writeError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeySession, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateBody decodes the request body into a T, validates it and adds it to the context
func ValidateBody[T any](m *Middleware) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := new(T)
			if err := json.NewDecoder(r.Body).Decode(body); err != nil {
				m.Logger.Debug("Error decoding request body", "url", r.URL.Path, "error", err)
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}

			if errs := m.Validator.Validate(body); len(errs) > 0 {
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ValidationError{Messages: errs.Errors()})
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyBody, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bodyFromContext[T any](r *http.Request) (*T, bool) {
	body, ok := r.Context().Value(contextKeyBody).(*T)
	return body, ok
}

// sessionFromContext returns the caller's session, anonymous when none was attached
func sessionFromContext(r *http.Request) domain.Session {
	session, _ := r.Context().Value(contextKeySession).(domain.Session)
	return session
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
