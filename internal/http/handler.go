package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/dto"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/i18n"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/metrics"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/middleware"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// Handler provides HTTP handlers for the quote route.
type Handler struct {
	pricer  service.Pricer
	catalog service.CatalogService
}

// NewHandler creates a new Handler instance.
func NewHandler(pricer service.Pricer, catalog service.CatalogService) *Handler {
	return &Handler{
		pricer:  pricer,
		catalog: catalog,
	}
}

// Quote handles POST /api/quote requests.
//
// @Summary      Price a combo selection
// @Description  Prices a combo selection, complete or not, and returns the total together with the per-item price breakdown and the cost of the next item. Totals follow the combo's pricing strategy; the step-ladder combos pool entree picks and paid extras into one count. Supports idempotency via Idempotency-Key header.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.QuoteRequest true "Combo selection"
// @Success      200 {object} dto.SuccessResponse "Successful quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown combo"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordQuoteCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	def, err := h.catalog.GetCombo(c.Request.Context(), req.ComboID)
	if err == service.ErrComboNotFound {
		metrics.RecordQuoteCalculation(0, "combo_not_found")
		builder.Error(http.StatusNotFound, i18n.ErrKeyComboNotFound, err)
		return
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	start := time.Now()

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "quote", "Combo quote requested", map[string]interface{}{
				"combo_id":   req.ComboID,
				"item_count": len(req.SelectedItems) + len(req.AdditionalItems),
			})
		}
	}

	quote := h.pricer.Quote(def.Combo, req.Selection())

	metrics.RecordQuoteCalculation(time.Since(start), "success")
	builder.SuccessOK(quote)
}
