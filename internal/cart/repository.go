package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pradeepkasula/online-shopping-cart/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, itemID string) (*CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID uint, productID string) (*CartItem, error)
	GetByUserID(ctx context.Context, userID uint) ([]CartItem, error)
	Create(ctx context.Context, userID uint, productID string, quantity int) (*CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error)
	Delete(ctx context.Context, itemID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, itemID string) (*CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return &item, nil
}

// GetByUserAndProduct returns nil, nil when the user has no line for the
// product; callers use that to decide between insert and quantity merge.
func (r *repository) GetByUserAndProduct(ctx context.Context, userID uint, productID string) (*CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return &item, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart rows: %w", err)
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) Create(ctx context.Context, userID uint, productID string, quantity int) (*CartItem, error) {
	item := &CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.UserID, item.ProductID, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create cart item",
			zap.Uint("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}

	return item, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, quantity, itemID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

func (r *repository) Delete(ctx context.Context, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteByUserID clears the user's cart; deleting an already-empty cart is a
// no-op, not an error.
func (r *repository) DeleteByUserID(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
