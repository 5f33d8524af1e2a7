package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/i18n"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// SessionHandler provides HTTP handlers for combo customization sessions.
type SessionHandler struct {
	selections service.SelectionService
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(selections service.SelectionService) *SessionHandler {
	return &SessionHandler{
		selections: selections,
	}
}

// selectionError maps a typed selection error onto a status and message key.
// Unmatched errors fall through as internal.
func (h *SessionHandler) selectionError(builder *ResponseBuilder, err error) {
	switch err {
	case service.ErrSessionNotFound:
		builder.Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, err)
	case service.ErrComboNotFound:
		builder.Error(http.StatusNotFound, i18n.ErrKeyComboNotFound, err)
	case service.ErrSelectionFull:
		builder.Error(http.StatusConflict, i18n.ErrKeySelectionFull, err)
	case service.ErrBaseChoiceNotAllowed:
		builder.Error(http.StatusConflict, i18n.ErrKeyBaseChoiceNotAllowed, err)
	case service.ErrUnknownItem, service.ErrNotEntree:
		builder.Error(http.StatusBadRequest, i18n.ErrKeyItemUnknown, err)
	case service.ErrItemInOtherPool:
		builder.Error(http.StatusConflict, i18n.ErrKeyItemInOtherPool, err)
	case service.ErrIncompleteSelection:
		builder.Error(http.StatusConflict, i18n.ErrKeyIncompleteSelection, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// StartSession handles POST /api/sessions requests.
//
// @Summary      Start a combo customization session
// @Description  Opens a fresh selection session for a combo. Previous state never carries over.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        request body dto.StartSessionRequest true "Combo to customize"
// @Success      201 {object} dto.SuccessResponse "New session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Combo not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	state, err := h.selections.Start(c.Request.Context(), req.ComboID)
	if err != nil {
		h.selectionError(builder, err)
		return
	}

	builder.SuccessCreated(state)
}

// GetSession handles GET /api/sessions/:id requests.
//
// @Summary      Get session state
// @Description  Returns the selection, the live quote and completeness of a session
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session id"
// @Success      200 {object} dto.SuccessResponse "Session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	state, err := h.selections.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.selectionError(builder, err)
		return
	}

	builder.SuccessOK(state)
}

// SetBase handles PUT /api/sessions/:id/base requests.
//
// @Summary      Choose the combo base
// @Description  Sets the mutually exclusive base choice (e.g. chow mein or fried rice). Choosing again overwrites.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session id"
// @Param        request body dto.SetBaseRequest true "Base option"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Combo takes no base choice"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions/{id}/base [put]
func (h *SessionHandler) SetBase(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	state, err := h.selections.SetBase(c.Request.Context(), c.Param("id"), req.ItemID)
	if err != nil {
		h.selectionError(builder, err)
		return
	}

	builder.SuccessOK(state)
}

// ToggleEntree handles POST /api/sessions/:id/selections/:itemID requests.
//
// @Summary      Toggle an entree selection
// @Description  Adds the entree to the selection slots, or removes it when already chosen. Adding past the combo's slot count fails; removal always succeeds.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session id"
// @Param        itemID path int true "Entree item id"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Selection slots already filled"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions/{id}/selections/{itemID} [post]
func (h *SessionHandler) ToggleEntree(c *gin.Context) {
	builder := NewResponseBuilder(c)

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil || itemID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	state, err := h.selections.ToggleEntree(c.Request.Context(), c.Param("id"), itemID)
	if err != nil {
		h.selectionError(builder, err)
		return
	}

	builder.SuccessOK(state)
}

// ToggleExtra handles POST /api/sessions/:id/extras/:itemID requests.
//
// @Summary      Toggle a paid extra
// @Description  Adds the item to the paid extras, or removes it when already chosen. Extras are not capped.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session id"
// @Param        itemID path int true "Extra item id"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions/{id}/extras/{itemID} [post]
func (h *SessionHandler) ToggleExtra(c *gin.Context) {
	builder := NewResponseBuilder(c)

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil || itemID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	state, err := h.selections.ToggleExtra(c.Request.Context(), c.Param("id"), itemID)
	if err != nil {
		h.selectionError(builder, err)
		return
	}

	builder.SuccessOK(state)
}

// CancelSession handles DELETE /api/sessions/:id requests.
//
// @Summary      Cancel a session
// @Description  Discards the session state. Cancelling an unknown session is not an error.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session id"
// @Success      200 {object} dto.SuccessResponse "Session discarded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) CancelSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.selections.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.selectionError(builder, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{"cancelled": true})
}
