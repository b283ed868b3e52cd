package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/config"
	"github.com/SergeyBogomolovv/supermall/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u entities.User) error
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	RecordFailedLogin(ctx context.Context, id string, now time.Time, maxAttempts int, cooldown time.Duration) (entities.User, error)
	StartSession(ctx context.Context, id, tokenID string) error
	RotateRefreshToken(ctx context.Context, id, oldTokenID, newTokenID string) error
}

type TokenIssuer interface {
	IssueAccessToken(u entities.User) (token string, expiresAt time.Time, err error)
	IssueRefreshToken(u entities.User) (token string, tokenID string, err error)
	VerifyRefresh(token string) (entities.Claims, error)
}

type authService struct {
	logger *slog.Logger
	users  UserRepo
	tokens TokenIssuer

	maxFailedLogins int
	lockDuration    time.Duration
	hashCost        int
	now             func() time.Time
}

func NewAuthService(logger *slog.Logger, users UserRepo, tokens TokenIssuer, cfg config.Auth) *authService {
	return &authService{
		logger:          logger.With(slog.String("service", "auth")),
		users:           users,
		tokens:          tokens,
		maxFailedLogins: cfg.MaxFailedLogins,
		lockDuration:    cfg.LockDuration,
		hashCost:        bcrypt.DefaultCost,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role entities.Role) (entities.User, error) {
	if role != entities.RoleCustomer && role != entities.RoleMerchant {
		return entities.User{}, entities.NewValidationError("role must be customer or merchant")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID), slog.String("role", string(role)))
	return user, nil
}

// Login checks credentials. A locked account is rejected even with the right
// password; a wrong password counts towards the lock.
func (s *authService) Login(ctx context.Context, email, password string) (entities.TokenPair, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.TokenPair{}, entities.ErrUnauthorized
	}
	if err != nil {
		return entities.TokenPair{}, fmt.Errorf("failed to get user: %w", err)
	}

	now := s.now()
	if user.IsLocked(now) {
		return entities.TokenPair{}, entities.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		updated, err := s.users.RecordFailedLogin(ctx, user.ID, now, s.maxFailedLogins, s.lockDuration)
		if err != nil {
			return entities.TokenPair{}, fmt.Errorf("failed to record failed login: %w", err)
		}
		if updated.IsLocked(now) {
			s.logger.WarnContext(ctx, "account locked", slog.String("user_id", user.ID))
		}
		return entities.TokenPair{}, entities.ErrUnauthorized
	}

	return s.issue(ctx, user, func(tokenID string) error {
		return s.users.StartSession(ctx, user.ID, tokenID)
	})
}

// Refresh exchanges a refresh token for a new pair. The token id is rotated,
// so every refresh token is accepted once.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (entities.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return entities.TokenPair{}, entities.ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.TokenPair{}, entities.ErrUnauthorized
	}
	if err != nil {
		return entities.TokenPair{}, fmt.Errorf("failed to get user: %w", err)
	}

	if user.RefreshTokenID == "" || user.RefreshTokenID != claims.TokenID {
		s.logger.WarnContext(ctx, "stale refresh token", slog.String("user_id", user.ID))
		return entities.TokenPair{}, entities.ErrUnauthorized
	}
	if user.IsLocked(s.now()) {
		return entities.TokenPair{}, entities.ErrAccountLocked
	}

	pair, err := s.issue(ctx, user, func(tokenID string) error {
		return s.users.RotateRefreshToken(ctx, user.ID, claims.TokenID, tokenID)
	})
	if errors.Is(err, entities.ErrUnauthorized) {
		s.logger.WarnContext(ctx, "refresh token reused concurrently", slog.String("user_id", user.ID))
		return entities.TokenPair{}, entities.ErrUnauthorized
	}
	return pair, err
}

// issue signs a new pair; store persists the refresh token id and decides
// whether the pair may be handed out.
func (s *authService) issue(ctx context.Context, user entities.User, store func(tokenID string) error) (entities.TokenPair, error) {
	access, expiresAt, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return entities.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, tokenID, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return entities.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := store(tokenID); err != nil {
		return entities.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return entities.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
