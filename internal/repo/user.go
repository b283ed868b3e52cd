package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "role",
	"failed_login_attempts", "locked_until", "refresh_token_id", "created_at",
}

type UserRepo struct {
	postgresRepo
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *UserRepo) CreateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns("id", "name", "email", "password_hash", "role", "created_at").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create user: %w", mapError(err, nil))
	}
	return nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *UserRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *UserRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var user User
	if err := r.getContext(ctx, &user, query, args...); err != nil {
		return entities.User{}, mapError(err, entities.ErrUserNotFound)
	}
	return UserToEntity(user), nil
}

// RecordFailedLogin counts a failed attempt in one statement, so parallel
// attempts cannot lose increments. Reaching maxAttempts locks the account
// until now+cooldown and restarts the counter; an expired lock is cleared.
func (r *UserRepo) RecordFailedLogin(ctx context.Context, id string, now time.Time, maxAttempts int, cooldown time.Duration) (entities.User, error) {
	query, args := recordFailedLoginQuery(r.qb, id, now, maxAttempts, cooldown)

	var user User
	if err := r.getContext(ctx, &user, query, args...); err != nil {
		return entities.User{}, mapError(err, entities.ErrUserNotFound)
	}
	return UserToEntity(user), nil
}

// StartSession clears the failed-login state after a successful password
// check and stores the new refresh token id.
func (r *UserRepo) StartSession(ctx context.Context, id, tokenID string) error {
	query, args := r.qb.Update("users").
		Set("failed_login_attempts", 0).
		Set("locked_until", nil).
		Set("refresh_token_id", tokenID).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

// RotateRefreshToken replaces oldTokenID with newTokenID only if oldTokenID
// is still current. Otherwise the token was already used and
// entities.ErrUnauthorized is returned.
func (r *UserRepo) RotateRefreshToken(ctx context.Context, id, oldTokenID, newTokenID string) error {
	query, args := rotateRefreshTokenQuery(r.qb, id, oldTokenID, newTokenID)

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if n == 0 {
		return entities.ErrUnauthorized
	}
	return nil
}

func recordFailedLoginQuery(qb sq.StatementBuilderType, id string, now time.Time, maxAttempts int, cooldown time.Duration) (string, []any) {
	reachesLimit := sq.Expr("failed_login_attempts + 1 >= ?", maxAttempts)

	return qb.Update("users").
		Set("failed_login_attempts", sq.Case().
			When(reachesLimit, "0").
			Else("failed_login_attempts + 1")).
		Set("locked_until", sq.Case().
			When(reachesLimit, sq.Expr("?::timestamptz", now.Add(cooldown))).
			When(sq.Expr("locked_until <= ?", now), "NULL").
			Else("locked_until")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		MustSql()
}

func rotateRefreshTokenQuery(qb sq.StatementBuilderType, id, oldTokenID, newTokenID string) (string, []any) {
	return qb.Update("users").
		Set("refresh_token_id", newTokenID).
		Where(sq.Eq{"id": id, "refresh_token_id": oldTokenID}).
		MustSql()
}
