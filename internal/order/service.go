package order

import (
	"context"
	"fmt"

	"github.com/pradeepkasula/online-shopping-cart/internal/inventory"
	"github.com/pradeepkasula/online-shopping-cart/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, userID uint, items []ItemRequest) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
}

type service struct {
	repo      Repository
	inventory inventory.Client
}

func NewService(repo Repository, inv inventory.Client) Service {
	return &service{repo: repo, inventory: inv}
}

// CreateOrder runs the two-phase creation workflow: validate every item
// against the product service, snapshot current prices into a PENDING order,
// then deduct stock item by item in the caller-supplied order.
//
// Deductions are not compensated. When the deduction for item k fails, items
// 1..k-1 keep their stock deducted, items k..n are not attempted, and the
// order is persisted FAILED with its item rows as the audit trail of what was
// taken. Both availability passes are check-then-act against a remote
// authority with no reservation, so concurrent orders can jointly over-commit
// stock.
func (s *service) CreateOrder(ctx context.Context, userID uint, items []ItemRequest) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", userID),
		zap.Int("item_count", len(items)),
	)

	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	// Phase A: every item is checked before anything is written, so an order
	// is never partially created because a later item failed validation.
	for _, item := range items {
		product, err := s.inventory.FetchProduct(ctx, item.ProductID)
		if err != nil {
			log.Warn("order validation failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		if !s.inventory.IsAvailable(ctx, item.ProductID, item.Quantity) {
			return nil, fmt.Errorf("%w for product %s", inventory.ErrInsufficientStock, product.Name)
		}
	}

	// Snapshot pass: prices are re-read here rather than reused from the
	// validation pass, matching the authority's freshest figures.
	orderItems := make([]OrderItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		product, err := s.inventory.FetchProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		orderItems = append(orderItems, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	o := &Order{
		UserID:      userID,
		Status:      StatusPending,
		TotalAmount: total,
		Items:       orderItems,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	log = log.With(zap.String("order_id", o.ID))

	// Phase B: deduct stock strictly in list order, stopping at the first
	// failure.
	for _, item := range items {
		if err := s.inventory.Deduct(ctx, item.ProductID, item.Quantity); err != nil {
			log.Error("stock deduction failed, marking order as FAILED",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)

			if updErr := s.repo.UpdateStatus(ctx, o.ID, StatusFailed); updErr != nil {
				log.Error("failed to persist FAILED status", zap.Error(updErr))
			}
			o.Status = StatusFailed

			return nil, fmt.Errorf("order creation failed: %w", err)
		}
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, StatusConfirmed); err != nil {
		return nil, err
	}
	o.Status = StatusConfirmed

	log.Info("order created successfully",
		zap.String("total_amount", total.StringFixed(2)),
	)
	return o, nil
}

func (s *service) GetOrdersByUserID(ctx context.Context, userID uint) ([]Order, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// UpdateOrderStatus overwrites the status unconditionally: any known status
// value can replace any other, including CONFIRMED back to PENDING. This is
// an administrative override, separate from the creation workflow.
func (s *service) UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, orderID)
}
