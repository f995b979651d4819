package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		ctx := SetUserContext(ctx, 42, "admin")

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, uint(42), id)
		assert.Equal(t, "admin", GetUserRoleFromContext(ctx))
	})

	t.Run("Empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
		assert.Equal(t, "", GetUserRoleFromContext(ctx))
	})
}
