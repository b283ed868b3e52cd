package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/service"
	mocks "github.com/SergeyBogomolovv/supermall/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCartService_ApplyCartAction(t *testing.T) {
	type MockBehavior func(carts *mocks.MockCartRepo, products *mocks.MockProductCatalog)

	product := entities.Product{ID: "P", Name: "Widget", Price: decimal.NewFromInt(100)}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		action       entities.CartAction
		productID    string
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
		wantErrType  bool
		wantItems    int
		wantPrice    decimal.Decimal
	}{
		{
			name:      "add to new cart",
			action:    entities.CartActionAdd,
			productID: "P",
			quantity:  2,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductCatalog) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []string{"P"}).Return([]entities.Product{product}, nil)
				carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.Cart{}, entities.ErrCartNotFound).Once()
				carts.EXPECT().SaveCart(mock.Anything, mock.MatchedBy(func(c entities.Cart) bool {
					return c.UserID == "user" && len(c.Items) == 1 && c.Items[0].Quantity == 2 && !c.UpdatedAt.IsZero()
				})).Return(nil).Once()
			},
			wantItems: 2,
			wantPrice: decimal.NewFromInt(200),
		},
		{
			name:      "add merges existing line",
			action:    entities.CartActionAdd,
			productID: "P",
			quantity:  3,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductCatalog) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []string{"P"}).Return([]entities.Product{product}, nil)
				carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.Cart{
					UserID: "user",
					Items:  []entities.LineItem{{ProductID: "P", Quantity: 2}},
				}, nil).Once()
				carts.EXPECT().SaveCart(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantItems: 5,
			wantPrice: decimal.NewFromInt(500),
		},
		{
			name:      "add unknown product",
			action:    entities.CartActionAdd,
			productID: "missing",
			quantity:  1,
			mockBehavior: func(_ *mocks.MockCartRepo, products *mocks.MockProductCatalog) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []string{"missing"}).Return([]entities.Product{}, nil).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:         "add non-positive quantity",
			action:       entities.CartActionAdd,
			productID:    "P",
			quantity:     0,
			mockBehavior: func(_ *mocks.MockCartRepo, _ *mocks.MockProductCatalog) {},
			wantErrType:  true,
		},
		{
			name:      "remove only item",
			action:    entities.CartActionRemove,
			productID: "P",
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductCatalog) {
				carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.Cart{
					UserID: "user",
					Items:  []entities.LineItem{{ProductID: "P", Quantity: 2}},
				}, nil).Once()
				carts.EXPECT().SaveCart(mock.Anything, mock.MatchedBy(func(c entities.Cart) bool {
					return len(c.Items) == 0
				})).Return(nil).Once()
				products.EXPECT().GetProductsByIDs(mock.Anything, []string{}).Return([]entities.Product{}, nil).Once()
			},
			wantItems: 0,
			wantPrice: decimal.Zero,
		},
		{
			name:      "save fails",
			action:    entities.CartActionUpdate,
			productID: "P",
			quantity:  4,
			mockBehavior: func(carts *mocks.MockCartRepo, _ *mocks.MockProductCatalog) {
				carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.NewCart("user"), nil).Once()
				carts.EXPECT().SaveCart(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductCatalog(t)
			tc.mockBehavior(carts, products)

			svc := service.NewCartService(discardLogger(), carts, products)
			view, err := svc.ApplyCartAction(context.Background(), "user", tc.action, tc.productID, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.wantErrType {
				var ve *entities.ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantItems, view.TotalItems)
			assert.True(t, tc.wantPrice.Equal(view.TotalPrice), "got %s", view.TotalPrice)
		})
	}
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("missing cart reads as empty", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductCatalog(t)

		carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.Cart{}, entities.ErrCartNotFound).Once()
		products.EXPECT().GetProductsByIDs(mock.Anything, []string{}).Return([]entities.Product{}, nil).Once()

		svc := service.NewCartService(discardLogger(), carts, products)
		view, err := svc.GetCart(context.Background(), "user")

		require.NoError(t, err)
		assert.Equal(t, "user", view.UserID)
		assert.Empty(t, view.Items)
		assert.Empty(t, view.SavedForLater)
		assert.True(t, view.TotalPrice.IsZero())
	})

	t.Run("prices with live catalog", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductCatalog(t)

		carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.Cart{
			UserID:        "user",
			Items:         []entities.LineItem{{ProductID: "a", Quantity: 2}, {ProductID: "gone", Quantity: 1}},
			SavedForLater: []entities.LineItem{{ProductID: "b", Quantity: 1}},
		}, nil).Once()
		products.EXPECT().GetProductsByIDs(mock.Anything, []string{"a", "gone", "b"}).Return([]entities.Product{
			{ID: "a", Price: decimal.RequireFromString("2.50")},
			{ID: "b", Price: decimal.NewFromInt(7)},
		}, nil).Once()

		svc := service.NewCartService(discardLogger(), carts, products)
		view, err := svc.GetCart(context.Background(), "user")

		require.NoError(t, err)
		assert.Equal(t, 3, view.TotalItems)
		assert.True(t, decimal.NewFromInt(5).Equal(view.TotalPrice), "got %s", view.TotalPrice)
		require.Len(t, view.SavedForLater, 1)
		assert.NotNil(t, view.SavedForLater[0].Product)
	})

	t.Run("storage error", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductCatalog(t)
		dbError := errors.New("db error")

		carts.EXPECT().GetCart(mock.Anything, "user").Return(entities.Cart{}, dbError).Once()

		svc := service.NewCartService(discardLogger(), carts, products)
		_, err := svc.GetCart(context.Background(), "user")
		assert.ErrorIs(t, err, dbError)
	})
}
