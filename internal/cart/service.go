package cart

import (
	"context"
	"fmt"

	"github.com/pradeepkasula/online-shopping-cart/internal/inventory"
	"github.com/pradeepkasula/online-shopping-cart/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the business logic for carts. Every mutation re-validates
// against the product service before persisting; there is no reservation, so
// an availability check can pass and still be stale by the time an order
// deducts stock.
type Service interface {
	AddItem(ctx context.Context, userID uint, productID string, quantity int) (*CartItem, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	GetCart(ctx context.Context, userID uint) (*Cart, error)
	ClearCart(ctx context.Context, userID uint) error
}

type service struct {
	repo      Repository
	inventory inventory.Client
}

func NewService(repo Repository, inv inventory.Client) Service {
	return &service{repo: repo, inventory: inv}
}

// AddItem adds a product to a user's cart. If the product is already in the
// cart the quantities are summed, and availability is re-checked against the
// summed quantity rather than the delta.
func (s *service) AddItem(ctx context.Context, userID uint, productID string, quantity int) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.Uint("user_id", userID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
	)

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.inventory.FetchProduct(ctx, productID)
	if err != nil {
		log.Warn("product lookup failed", zap.Error(err))
		return nil, err
	}

	if !s.inventory.IsAvailable(ctx, productID, quantity) {
		return nil, fmt.Errorf("%w for product %s", inventory.ErrInsufficientStock, product.Name)
	}

	existing, err := s.repo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity

		if !s.inventory.IsAvailable(ctx, productID, newQuantity) {
			log.Warn("summed quantity exceeds stock", zap.Int("new_quantity", newQuantity))
			return nil, fmt.Errorf("%w for requested quantity %d", inventory.ErrInsufficientStock, newQuantity)
		}

		return s.repo.UpdateQuantity(ctx, existing.ID, newQuantity)
	}

	return s.repo.Create(ctx, userID, productID, quantity)
}

// UpdateItem overwrites a cart line's quantity after re-validating the new
// absolute quantity against stock.
func (s *service) UpdateItem(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !s.inventory.IsAvailable(ctx, item.ProductID, quantity) {
		return nil, fmt.Errorf("%w for requested quantity %d", inventory.ErrInsufficientStock, quantity)
	}

	return s.repo.UpdateQuantity(ctx, itemID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, itemID string) error {
	return s.repo.Delete(ctx, itemID)
}

// GetCart resolves every line's current name and price via the product
// service. A line whose product is gone (or whose lookup failed) is rendered
// as an unavailable line with zero price instead of failing the whole read.
func (s *service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &Cart{
		UserID: userID,
		Items:  make([]CartLine, 0, len(items)),
		Total:  decimal.Zero,
	}

	for _, item := range items {
		line := s.resolveLine(ctx, item)
		out.Items = append(out.Items, line)
		out.Total = out.Total.Add(line.Subtotal)
	}

	return out, nil
}

func (s *service) ClearCart(ctx context.Context, userID uint) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("cart cleared",
		zap.String("layer", "service"),
		zap.Uint("user_id", userID),
	)
	return nil
}

func (s *service) resolveLine(ctx context.Context, item CartItem) CartLine {
	product, err := s.inventory.FetchProduct(ctx, item.ProductID)
	if err != nil {
		return CartLine{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: UnavailableProductName,
			UnitPrice:   decimal.Zero,
			Quantity:    item.Quantity,
			Subtotal:    decimal.Zero,
			Available:   false,
		}
	}

	subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return CartLine{
		ItemID:      item.ID,
		ProductID:   item.ProductID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    item.Quantity,
		Subtotal:    subtotal,
		Available:   true,
	}
}
