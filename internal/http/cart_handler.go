package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/i18n"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/middleware"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes.
type CartHandler struct {
	carts      service.CartService
	selections service.SelectionService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts service.CartService, selections service.SelectionService) *CartHandler {
	return &CartHandler{
		carts:      carts,
		selections: selections,
	}
}

// cartError maps cart and selection errors onto responses.
func (h *CartHandler) cartError(builder *ResponseBuilder, err error) {
	switch err {
	case service.ErrCartNotFound:
		builder.Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, err)
	case service.ErrSessionNotFound:
		builder.Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, err)
	case service.ErrIncompleteSelection:
		builder.Error(http.StatusConflict, i18n.ErrKeyIncompleteSelection, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// CreateCart handles POST /api/carts requests.
//
// @Summary      Create a cart
// @Description  Opens an empty cart and returns its id
// @Tags         Carts
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "New cart"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Create(c.Request.Context())
	if err != nil {
		h.cartError(builder, err)
		return
	}

	builder.SuccessCreated(dto.NewCartResponse(cart))
}

// GetCart handles GET /api/carts/:id requests.
//
// @Summary      Get a cart
// @Description  Returns the cart lines together with the derived item count and subtotal
// @Tags         Carts
// @Produce      json
// @Param        id path string true "Cart id"
// @Success      200 {object} dto.SuccessResponse "Cart contents"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.cartError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewCartResponse(cart))
}

// AddItem handles POST /api/carts/:id/items requests.
//
// @Summary      Add an ordinary item
// @Description  Adds a menu item to the cart. Adding the same item id again only raises the quantity; the unit price stays frozen from the first add.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart id"
// @Param        request body dto.AddItemRequest true "Item to add"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), c.Param("id"), req.ItemID, req.Name, req.Price, req.Quantity)
	if err != nil {
		h.cartError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewCartResponse(cart))
}

// AddCombo handles POST /api/carts/:id/combos requests.
//
// @Summary      Add a finalized combo
// @Description  Finalizes a customization session and appends it to the cart as a new line with the price frozen. Incomplete sessions are rejected; identical customizations never merge.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart id"
// @Param        request body dto.AddComboRequest true "Session to finalize"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Cart or session not found"
// @Failure      409 {object} dto.ErrorResponse "Selection incomplete"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{id}/combos [post]
func (h *CartHandler) AddCombo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	// Make sure the cart exists before the session is consumed.
	if _, err := h.carts.Get(c.Request.Context(), c.Param("id")); err != nil {
		h.cartError(builder, err)
		return
	}

	selection, quote, combo, err := h.selections.Finalize(c.Request.Context(), req.SessionID)
	if err != nil {
		h.cartError(builder, err)
		return
	}

	cart, err := h.carts.AddCombo(c.Request.Context(), c.Param("id"), *combo, *selection, quote.Total)
	if err != nil {
		h.cartError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "add_to_cart", "Combo added to cart", map[string]interface{}{
				"cart_id":  cart.ID,
				"combo_id": combo.ID,
				"total":    quote.Total.String(),
			})
		}
	}

	builder.SuccessOK(dto.NewCartResponse(cart))
}

// RemoveItem handles DELETE /api/carts/:id/items/:itemID requests.
//
// @Summary      Remove an item
// @Description  Decrements the line's quantity, dropping the line when it reaches zero. With all=true the line is removed outright. Unknown line ids leave the cart unchanged.
// @Tags         Carts
// @Produce      json
// @Param        id path string true "Cart id"
// @Param        itemID path string true "Cart line id"
// @Param        all query bool false "Remove the line regardless of quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{id}/items/{itemID} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	all := c.Query("all") == "true"
	cart, err := h.carts.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), all)
	if err != nil {
		h.cartError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewCartResponse(cart))
}

// ClearCart handles DELETE /api/carts/:id requests.
//
// @Summary      Clear a cart
// @Description  Removes every line but keeps the cart alive
// @Tags         Carts
// @Produce      json
// @Param        id path string true "Cart id"
// @Success      200 {object} dto.SuccessResponse "Emptied cart"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{id} [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.carts.Clear(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.cartError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewCartResponse(cart))
}
