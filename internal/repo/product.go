package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/supermall/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{postgresRepo: newPostgresRepo(db)}
}

// GetProductsByIDs returns the products that exist; missing ids are skipped.
func (r *ProductRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select("id", "vendor_id", "name", "price", "stock").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
