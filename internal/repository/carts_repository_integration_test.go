//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

func TestCartsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCartsRepository(db)

	t.Run("missing cart returns nil", func(t *testing.T) {
		cart, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, cart)
	})

	t.Run("save and get round trip", func(t *testing.T) {
		base := 1
		now := time.Now().UTC().Truncate(time.Millisecond)
		cart := &model.Cart{
			ID: "cart-1",
			Items: []model.CartLineItem{
				{LineID: "42", Name: "Spring Rolls", Price: 850, Quantity: 2},
				{
					LineID:          "combo-2-1",
					Name:            "Dinner for Two",
					Price:           2295,
					Quantity:        1,
					IsCombo:         true,
					ComboID:         2,
					SelectedItems:   []int{101, 104},
					AdditionalItems: []int{107},
					BaseChoice:      &base,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		require.NoError(t, repo.Save(ctx, cart))

		got, err := repo.Get(ctx, "cart-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Items, 2)
		assert.Equal(t, model.Cents(850), got.Items[0].Price)
		assert.True(t, got.Items[1].IsCombo)
		assert.Equal(t, []int{101, 104}, got.Items[1].SelectedItems)
		require.NotNil(t, got.Items[1].BaseChoice)
		assert.Equal(t, 1, *got.Items[1].BaseChoice)
	})

	t.Run("save upserts the full snapshot", func(t *testing.T) {
		now := time.Now()
		cart := &model.Cart{
			ID:        "cart-2",
			Items:     []model.CartLineItem{{LineID: "42", Name: "Spring Rolls", Price: 850, Quantity: 1}},
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Save(ctx, cart))

		cart.Items[0].Quantity = 5
		cart.UpdatedAt = time.Now()
		require.NoError(t, repo.Save(ctx, cart))

		got, err := repo.Get(ctx, "cart-2")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 5, got.Items[0].Quantity)
	})

	t.Run("delete removes the cart", func(t *testing.T) {
		now := time.Now()
		cart := &model.Cart{ID: "cart-3", Items: []model.CartLineItem{}, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Save(ctx, cart))

		require.NoError(t, repo.Delete(ctx, "cart-3"))

		got, err := repo.Get(ctx, "cart-3")
		require.NoError(t, err)
		assert.Nil(t, got)

		// Deleting again is not an error
		assert.NoError(t, repo.Delete(ctx, "cart-3"))
	})
}
