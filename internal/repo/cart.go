package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type CartRepo struct {
	postgresRepo
}

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *CartRepo) GetCart(ctx context.Context, userID string) (entities.Cart, error) {
	query, args := r.qb.Select("user_id", "items", "saved_for_later", "updated_at").
		From("carts").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, mapError(err, entities.ErrCartNotFound)
	}
	return CartToEntity(cart), nil
}

// SaveCart upserts the whole cart document.
func (r *CartRepo) SaveCart(ctx context.Context, c entities.Cart) error {
	updatedAt := c.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query, args := r.qb.Insert("carts").
		Columns("user_id", "items", "saved_for_later", "updated_at").
		Values(c.UserID, toLineItems(c.Items), toLineItems(c.SavedForLater), updatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			items = EXCLUDED.items,
			saved_for_later = EXCLUDED.saved_for_later,
			updated_at = EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
