package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newPostgresRepo(db *sqlx.DB) postgresRepo {
	return postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// mapError translates driver errors into domain errors. notFound is
// returned for sql.ErrNoRows.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %v", entities.ErrDuplicateKey, err)
		case foreignKeyViolation:
			return entities.NewValidationError("referenced %s does not exist", referencedEntity(pqErr.Constraint))
		}
	}
	return err
}

// referencedEntity guesses the missing row kind from a constraint name such
// as orders_vendor_id_fkey.
func referencedEntity(constraint string) string {
	switch {
	case strings.Contains(constraint, "vendor"):
		return "vendor"
	case strings.Contains(constraint, "customer"), strings.Contains(constraint, "user"):
		return "user"
	case strings.Contains(constraint, "product"):
		return "product"
	}
	return "record"
}

func (r postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Querier(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, trm.Querier(ctx, r.db), dest, query, args...)
}

func (r postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, trm.Querier(ctx, r.db), dest, query, args...)
}
