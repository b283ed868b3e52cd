package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
)

type CartRepo interface {
	GetCart(ctx context.Context, userID string) (entities.Cart, error)
	SaveCart(ctx context.Context, c entities.Cart) error
}

type ProductCatalog interface {
	GetProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
}

type cartService struct {
	logger   *slog.Logger
	carts    CartRepo
	products ProductCatalog
	now      func() time.Time
}

func NewCartService(logger *slog.Logger, carts CartRepo, products ProductCatalog) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		carts:    carts,
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetCart returns the priced cart. A user without a cart gets an empty one.
func (s *cartService) GetCart(ctx context.Context, userID string) (entities.CartView, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return entities.CartView{}, err
	}
	return s.view(ctx, cart)
}

// ApplyCartAction loads the cart, applies one mutation and stores the result.
// Concurrent mutations of the same cart resolve as last write wins.
func (s *cartService) ApplyCartAction(ctx context.Context, userID string, action entities.CartAction, productID string, quantity int) (entities.CartView, error) {
	if action == entities.CartActionAdd {
		if quantity <= 0 {
			return entities.CartView{}, entities.NewValidationError("quantity must be a positive integer")
		}
		if err := s.ensureProduct(ctx, productID); err != nil {
			return entities.CartView{}, err
		}
	}

	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return entities.CartView{}, err
	}

	if err := cart.Apply(action, productID, quantity); err != nil {
		return entities.CartView{}, err
	}
	cart.UpdatedAt = s.now()

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return entities.CartView{}, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.DebugContext(ctx, "cart updated",
		slog.String("user_id", userID),
		slog.String("action", string(action)),
		slog.String("product_id", productID),
	)
	return s.view(ctx, cart)
}

func (s *cartService) loadCart(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if errors.Is(err, entities.ErrCartNotFound) {
		return entities.NewCart(userID), nil
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) ensureProduct(ctx context.Context, productID string) error {
	products, err := s.products.GetProductsByIDs(ctx, []string{productID})
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if len(products) == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (s *cartService) view(ctx context.Context, cart entities.Cart) (entities.CartView, error) {
	products, err := s.products.GetProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return entities.CartView{}, fmt.Errorf("failed to get products: %w", err)
	}

	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return cart.View(byID), nil
}
