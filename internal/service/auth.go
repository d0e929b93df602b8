package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/repository"
)

var signingMethod = jwt.SigningMethodHS256

// AuthConfig configures session tokens
type AuthConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type AuthService interface {
	SignIn(ctx context.Context, email, name string) (string, domain.User, error)
	Authenticate(ctx context.Context, token string) (domain.Session, error)
	SignOut(ctx context.Context, session domain.Session) error
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type authService struct {
	users   repository.UserRepository
	cfg     AuthConfig
	logger  hclog.Logger
	now     func() time.Time
	revoked map[string]time.Time
	mutex   sync.Mutex
}

func NewAuthService(users repository.UserRepository, cfg AuthConfig, logger hclog.Logger) (AuthService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session secret is required")
	}
	if cfg.Issuer == "" {
		return nil, errors.New("session issuer is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &authService{
		users:   users,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}, nil
}

// SignIn registers the user on first use and issues a session token
func (s *authService) SignIn(ctx context.Context, email, name string) (string, domain.User, error) {
	user, err := s.users.FindOrCreateByEmail(ctx, email, name)
	if err != nil {
		s.logger.Error("Unable to find or create user", "email", email, "error", err)
		return "", domain.User{}, fmt.Errorf("sign in: %w", err)
	}

	now := s.now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", domain.User{}, fmt.Errorf("signing session token: %w", err)
	}

	s.logger.Info("User signed in", "user_id", user.ID)
	return token, user, nil
}

// Authenticate turns a session token into a Session
func (s *authService) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		s.logger.Debug("Rejected session token", "error", err)
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return domain.Session{}, fmt.Errorf("%w: token has no subject", domain.ErrUnauthenticated)
	}

	s.mutex.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mutex.Unlock()
	if revoked {
		return domain.Session{}, fmt.Errorf("%w: session signed out", domain.ErrUnauthenticated)
	}

	return domain.Session{
		UserID:  claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		TokenID: claims.ID,
	}, nil
}

// SignOut revokes the token behind session until it would have expired anyway
func (s *authService) SignOut(ctx context.Context, session domain.Session) error {
	if session.Anonymous() || session.TokenID == "" {
		return domain.ErrUnauthenticated
	}

	now := s.now()
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id, expiry := range s.revoked {
		if now.After(expiry) {
			delete(s.revoked, id)
		}
	}
	s.revoked[session.TokenID] = now.Add(s.cfg.TTL)

	s.logger.Info("User signed out", "user_id", session.UserID)
	return nil
}
