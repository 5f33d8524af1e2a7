package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/i18n"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/middleware"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// CatalogHandler provides HTTP handlers for combo catalog routes.
type CatalogHandler struct {
	catalogService service.CatalogService
	pricer         service.Pricer
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalogService service.CatalogService, pricer service.Pricer) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		pricer:         pricer,
	}
}

// ListCombos handles GET /api/combos requests.
//
// @Summary      List combos
// @Description  Returns the active combination menu with selection rules and pricing per combo
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active combo catalog"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/combos [get]
func (h *CatalogHandler) ListCombos(c *gin.Context) {
	builder := NewResponseBuilder(c)

	combos, err := h.catalogService.GetCombos(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(combos)
}

// GetCombo handles GET /api/combos/:id requests.
//
// @Summary      Get one combo
// @Description  Returns a combo with its item pool partitioned into entree options and base options
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id path int true "Combo id"
// @Success      200 {object} dto.SuccessResponse "Combo with items"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Combo not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/combos/{id} [get]
func (h *CatalogHandler) GetCombo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	comboID, err := strconv.Atoi(c.Param("id"))
	if err != nil || comboID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	def, err := h.catalogService.GetCombo(c.Request.Context(), comboID)
	if err == service.ErrComboNotFound {
		builder.Error(http.StatusNotFound, i18n.ErrKeyComboNotFound, err)
		return
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	entrees := make([]model.MenuItem, 0, len(def.Items))
	baseOptions := make([]model.MenuItem, 0)
	for _, item := range def.Items {
		if item.IsEntree {
			entrees = append(entrees, item)
		} else {
			baseOptions = append(baseOptions, item)
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"combo":          def.Combo,
		"entrees":        entrees,
		"base_options":   baseOptions,
		"max_selections": def.Combo.MaxSelections(),
	})
}

// UpdateCatalog handles PUT /api/combos requests.
//
// @Summary      Replace the combo catalog
// @Description  Installs a new catalog version and invalidates the quote and catalog caches
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdateCatalogRequest true "Replacement catalog"
// @Success      200 {object} dto.SuccessResponse "New catalog version"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/combos [put]
func (h *CatalogHandler) UpdateCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	combos := make([]repository.ComboDefinition, len(req.Combos))
	for i, combo := range req.Combos {
		combos[i] = repository.ComboDefinition{Combo: combo.Combo, Items: combo.Items}
	}

	config, err := h.catalogService.Replace(c.Request.Context(), combos, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.pricer != nil {
		h.pricer.InvalidateCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_catalog", "Combo catalog replaced", map[string]interface{}{
				"combo_count": len(combos),
				"version":     config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"combos":     config.Combos,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateComboItems handles PUT /api/combos/:id/items requests.
//
// @Summary      Replace a combo's item pool
// @Description  Swaps the selectable items of one combo in the active catalog
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        id path int true "Combo id"
// @Param        request body dto.UpdateItemsRequest true "Replacement item pool"
// @Success      200 {object} dto.SuccessResponse "Updated catalog version"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Combo not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/combos/{id}/items [put]
func (h *CatalogHandler) UpdateComboItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	comboID, err := strconv.Atoi(c.Param("id"))
	if err != nil || comboID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.UpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	config, err := h.catalogService.ReplaceItems(c.Request.Context(), comboID, req.Items, req.UpdatedBy)
	if err == service.ErrComboNotFound {
		builder.Error(http.StatusNotFound, i18n.ErrKeyComboNotFound, err)
		return
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_combo_items", "Combo item pool replaced", map[string]interface{}{
				"combo_id":   comboID,
				"item_count": len(req.Items),
				"version":    config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"version":    config.Version,
		"updated_at": config.UpdatedAt,
	})
}

// CatalogHistory handles GET /api/combos-history requests.
//
// @Summary      List catalog history
// @Description  Returns past catalog versions, newest first
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Catalog history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/combos-history [get]
func (h *CatalogHandler) CatalogHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalogService.History(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
