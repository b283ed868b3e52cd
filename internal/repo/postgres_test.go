package repo

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, mapError(sql.ErrNoRows, entities.ErrOrderNotFound), entities.ErrOrderNotFound)
	})

	t.Run("unique violation", func(t *testing.T) {
		err := mapError(&pq.Error{Code: uniqueViolation, Constraint: "users_email_key"}, nil)
		assert.ErrorIs(t, err, entities.ErrDuplicateKey)
	})

	t.Run("missing product on order item", func(t *testing.T) {
		err := mapError(&pq.Error{Code: foreignKeyViolation, Constraint: "order_items_product_id_fkey"}, nil)

		var ve *entities.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, err.Error(), "referenced product does not exist")
	})

	t.Run("other errors pass through", func(t *testing.T) {
		dbError := errors.New("connection refused")
		assert.ErrorIs(t, mapError(dbError, entities.ErrOrderNotFound), dbError)
	})
}

func TestReferencedEntity(t *testing.T) {
	assert.Equal(t, "vendor", referencedEntity("products_vendor_id_fkey"))
	assert.Equal(t, "user", referencedEntity("orders_customer_id_fkey"))
	assert.Equal(t, "user", referencedEntity("carts_user_id_fkey"))
	assert.Equal(t, "product", referencedEntity("order_items_product_id_fkey"))
	assert.Equal(t, "record", referencedEntity("order_items_order_id_fkey"))
}
