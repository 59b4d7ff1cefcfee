// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the payload for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Service handles accounts and sessions. Session records live in Redis
// keyed by the token id so logout can revoke a token before it expires.
type Service struct {
	store     store.Store
	config    *config.Config
	jwt       *auth.JWTManager
	passwords *auth.PasswordManager
	redis     *redis.Client
}

// NewService creates a new user service
func NewService(st store.Store, cfg *config.Config, redisClient *redis.Client) *Service {
	return &Service{
		store:     st,
		config:    cfg,
		jwt:       auth.NewJWTManager(cfg),
		passwords: auth.NewPasswordManager(cfg),
		redis:     redisClient,
	}
}

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}

// Register creates an account and signs the new user in
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	var existing []User
	if err := s.store.Query(ctx, store.Users, "email", req.Email, &existing); err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	usr := User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, store.Users, &usr)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	usr.ID = id

	return s.startSession(ctx, &usr)
}

// Login verifies credentials and starts a session
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	var users []User
	if err := s.store.Query(ctx, store.Users, "email", req.Email, &users); err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}

	usr := users[0]
	if err := s.passwords.VerifyPassword(req.Password, usr.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, &usr)
}

// Logout revokes the session for the given token id
func (s *Service) Logout(ctx context.Context, tokenID string) error {
	if err := s.redis.Del(ctx, sessionKey(tokenID)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// IsSessionActive reports whether the session for the given token id has
// not been revoked or expired
func (s *Service) IsSessionActive(ctx context.Context, tokenID string) (bool, error) {
	_, err := s.redis.Get(ctx, sessionKey(tokenID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}

func (s *Service) startSession(ctx context.Context, usr *User) (*AuthResponse, error) {
	token, claims, err := s.jwt.GenerateAccessToken(usr.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(claims.ID), usr.Email, s.config.JWT.AccessTokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  usr,
	}, nil
}
