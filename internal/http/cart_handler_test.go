//go:build !integration

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

type cartEnvelope struct {
	Data dto.CartResponse `json:"data"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) dto.CartResponse {
	t.Helper()
	var resp cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func createCart(t *testing.T, router http.Handler) dto.CartResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/carts", "")
	require.Equal(t, http.StatusCreated, w.Code)
	cart := decodeCart(t, w)
	require.NotEmpty(t, cart.ID)
	return cart
}

// completeSession walks a customization for combo 2 to a finalizable state.
func completeSession(t *testing.T, router http.Handler) string {
	t.Helper()
	state := startSession(t, router, 2)
	w := doJSON(t, router, http.MethodPut, "/api/sessions/"+state.ID+"/base", `{"item_id": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/sessions/"+state.ID+"/selections/101", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/sessions/"+state.ID+"/selections/104", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, decodeSession(t, w).Quote.Complete)
	return state.ID
}

func TestCartHandler_CreateAndGet(t *testing.T) {
	router := newStoreTestRouter(t)

	cart := createCart(t, router)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Count)

	w := doJSON(t, router, http.MethodGet, "/api/carts/"+cart.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, cart.ID, decodeCart(t, w).ID)

	w = doJSON(t, router, http.MethodGet, "/api/carts/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	router := newStoreTestRouter(t)

	t.Run("add and merge", func(t *testing.T) {
		cart := createCart(t, router)

		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/items",
			`{"item_id": "42", "name": "Spring Rolls", "price": 8.50, "quantity": 2}`)
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeCart(t, w)
		require.Len(t, got.Items, 1)
		assert.Equal(t, model.Cents(850), got.Items[0].Price)
		assert.Equal(t, 2, got.Items[0].Quantity)

		// Same item id merges; the first price stays frozen
		w = doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/items",
			`{"item_id": "42", "name": "Spring Rolls", "price": 9.99, "quantity": 1}`)
		require.Equal(t, http.StatusOK, w.Code)
		got = decodeCart(t, w)
		require.Len(t, got.Items, 1)
		assert.Equal(t, model.Cents(850), got.Items[0].Price)
		assert.Equal(t, 3, got.Items[0].Quantity)
		assert.Equal(t, model.Cents(2550), got.Subtotal)
	})

	t.Run("missing name", func(t *testing.T) {
		cart := createCart(t, router)
		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/items", `{"item_id": "42", "price": 8.50}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown cart", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/carts/missing/items",
			`{"item_id": "42", "name": "Spring Rolls", "price": 8.50}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_AddCombo(t *testing.T) {
	router := newStoreTestRouter(t)

	t.Run("finalized session becomes a cart line", func(t *testing.T) {
		cart := createCart(t, router)
		sessionID := completeSession(t, router)

		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/combos",
			fmt.Sprintf(`{"session_id": %q}`, sessionID))
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeCart(t, w)
		require.Len(t, got.Items, 1)
		line := got.Items[0]
		assert.True(t, line.IsCombo)
		assert.Equal(t, 2, line.ComboID)
		assert.Equal(t, "Dinner for Two", line.Name)
		assert.Equal(t, model.Cents(2295), line.Price)
		assert.Equal(t, []int{101, 104}, line.SelectedItems)
		require.NotNil(t, line.BaseChoice)
		assert.Equal(t, 1, *line.BaseChoice)

		// The session is consumed
		w = doJSON(t, router, http.MethodGet, "/api/sessions/"+sessionID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("identical combos never merge", func(t *testing.T) {
		cart := createCart(t, router)

		for i := 0; i < 2; i++ {
			sessionID := completeSession(t, router)
			w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/combos",
				fmt.Sprintf(`{"session_id": %q}`, sessionID))
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := doJSON(t, router, http.MethodGet, "/api/carts/"+cart.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeCart(t, w)
		assert.Len(t, got.Items, 2)
		assert.Equal(t, model.Cents(4590), got.Subtotal)
	})

	t.Run("incomplete session is rejected and survives", func(t *testing.T) {
		cart := createCart(t, router)
		state := startSession(t, router, 2)

		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/combos",
			fmt.Sprintf(`{"session_id": %q}`, state.ID))
		assert.Equal(t, http.StatusConflict, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/sessions/"+state.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		cart := createCart(t, router)
		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/combos", `{"session_id": "missing"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown cart leaves the session alone", func(t *testing.T) {
		sessionID := completeSession(t, router)

		w := doJSON(t, router, http.MethodPost, "/api/carts/missing/combos",
			fmt.Sprintf(`{"session_id": %q}`, sessionID))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/sessions/"+sessionID, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing session id", func(t *testing.T) {
		cart := createCart(t, router)
		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/combos", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	router := newStoreTestRouter(t)

	addRolls := func(t *testing.T, cartID string, qty int) {
		t.Helper()
		w := doJSON(t, router, http.MethodPost, "/api/carts/"+cartID+"/items",
			fmt.Sprintf(`{"item_id": "42", "name": "Spring Rolls", "price": 8.50, "quantity": %d}`, qty))
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("decrement then drop", func(t *testing.T) {
		cart := createCart(t, router)
		addRolls(t, cart.ID, 2)

		w := doJSON(t, router, http.MethodDelete, "/api/carts/"+cart.ID+"/items/42", "")
		require.Equal(t, http.StatusOK, w.Code)
		got := decodeCart(t, w)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 1, got.Items[0].Quantity)

		w = doJSON(t, router, http.MethodDelete, "/api/carts/"+cart.ID+"/items/42", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeCart(t, w).Items)
	})

	t.Run("remove all at once", func(t *testing.T) {
		cart := createCart(t, router)
		addRolls(t, cart.ID, 5)

		w := doJSON(t, router, http.MethodDelete, "/api/carts/"+cart.ID+"/items/42?all=true", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeCart(t, w).Items)
	})

	t.Run("unknown line id is a no-op", func(t *testing.T) {
		cart := createCart(t, router)
		addRolls(t, cart.ID, 1)

		w := doJSON(t, router, http.MethodDelete, "/api/carts/"+cart.ID+"/items/nope", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeCart(t, w).Items, 1)
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	router := newStoreTestRouter(t)

	cart := createCart(t, router)
	w := doJSON(t, router, http.MethodPost, "/api/carts/"+cart.ID+"/items",
		`{"item_id": "42", "name": "Spring Rolls", "price": 8.50, "quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/carts/"+cart.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeCart(t, w)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Subtotal)

	// The cart itself survives
	w = doJSON(t, router, http.MethodGet, "/api/carts/"+cart.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
