package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRows(items ...*CartItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "created_at", "updated_at"})
	for _, it := range items {
		rows.AddRow(it.ID, it.UserID, it.ProductID, it.Quantity, it.CreatedAt, it.UpdatedAt)
	}
	return rows
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, product_id, quantity, created_at, updated_at").
			WithArgs("item-1").
			WillReturnRows(cartRows(&CartItem{
				ID: "item-1", UserID: 1, ProductID: "prod-1", Quantity: 2,
				CreatedAt: time.Now(), UpdatedAt: time.Now(),
			}))

		item, err := repo.GetByID(context.Background(), "item-1")
		require.NoError(t, err)
		assert.Equal(t, "item-1", item.ID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, product_id").
			WithArgs("missing").
			WillReturnRows(cartRows())

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRepository_GetByUserAndProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, product_id").
			WithArgs(uint(1), "prod-1").
			WillReturnRows(cartRows(&CartItem{
				ID: "item-1", UserID: 1, ProductID: "prod-1", Quantity: 3,
				CreatedAt: time.Now(), UpdatedAt: time.Now(),
			}))

		item, err := repo.GetByUserAndProduct(context.Background(), 1, "prod-1")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Absent returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, product_id").
			WithArgs(uint(1), "prod-9").
			WillReturnRows(cartRows())

		item, err := repo.GetByUserAndProduct(context.Background(), 1, "prod-9")
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO cart_items").
			WithArgs(sqlmock.AnyArg(), uint(1), "prod-1", 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		item, err := repo.Create(context.Background(), 1, "prod-1", 2)
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO cart_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), 1, "prod-1", 2)
		assert.Error(t, err)
	})
}

func TestRepository_UpdateQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE cart_items").
			WithArgs(5, "item-1").
			WillReturnRows(cartRows(&CartItem{
				ID: "item-1", UserID: 1, ProductID: "prod-1", Quantity: 5,
				CreatedAt: time.Now(), UpdatedAt: time.Now(),
			}))

		item, err := repo.UpdateQuantity(context.Background(), "item-1", 5)
		require.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE cart_items").
			WithArgs(5, "missing").
			WillReturnRows(cartRows())

		_, err := repo.UpdateQuantity(context.Background(), "missing", 5)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items WHERE id").
			WithArgs("item-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "item-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items WHERE id").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrItemNotFound)
	})
}

func TestRepository_DeleteByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Clears all rows", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id").
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 3))

		assert.NoError(t, repo.DeleteByUserID(context.Background(), 1))
	})

	t.Run("Empty cart is a no-op", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id").
			WithArgs(uint(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteByUserID(context.Background(), 2))
	})
}

func TestRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, product_id").
		WithArgs(uint(1)).
		WillReturnRows(cartRows(
			&CartItem{ID: "item-1", UserID: 1, ProductID: "prod-1", Quantity: 2, CreatedAt: now, UpdatedAt: now},
			&CartItem{ID: "item-2", UserID: 1, ProductID: "prod-2", Quantity: 1, CreatedAt: now, UpdatedAt: now},
		))

	items, err := repo.GetByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
