package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// StoreRoutes handles the customer-facing storefront route registration:
// catalog reads, quotes, customization sessions and carts.
type StoreRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
	sessionHandler *SessionHandler
	cartHandler    *CartHandler
}

// NewStoreRoutes creates a new StoreRoutes instance.
func NewStoreRoutes(pricer service.Pricer, catalog service.CatalogService, selections service.SelectionService, carts service.CartService) *StoreRoutes {
	return &StoreRoutes{
		handler:        NewHandler(pricer, catalog),
		catalogHandler: NewCatalogHandler(catalog, pricer),
		sessionHandler: NewSessionHandler(selections),
		cartHandler:    NewCartHandler(carts, selections),
	}
}

// RegisterPublicRoutes registers the anonymous storefront routes.
func (r *StoreRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/combos", r.catalogHandler.ListCombos)
	rg.GET("/combos/:id", r.catalogHandler.GetCombo)

	rg.POST("/quote", r.handler.Quote)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", r.sessionHandler.StartSession)
		sessions.GET("/:id", r.sessionHandler.GetSession)
		sessions.PUT("/:id/base", r.sessionHandler.SetBase)
		sessions.POST("/:id/selections/:itemID", r.sessionHandler.ToggleEntree)
		sessions.POST("/:id/extras/:itemID", r.sessionHandler.ToggleExtra)
		sessions.DELETE("/:id", r.sessionHandler.CancelSession)
	}

	carts := rg.Group("/carts")
	{
		carts.POST("", r.cartHandler.CreateCart)
		carts.GET("/:id", r.cartHandler.GetCart)
		carts.POST("/:id/items", r.cartHandler.AddItem)
		carts.POST("/:id/combos", r.cartHandler.AddCombo)
		carts.DELETE("/:id/items/:itemID", r.cartHandler.RemoveItem)
		carts.DELETE("/:id", r.cartHandler.ClearCart)
	}
}

// RegisterAdminRoutes registers the catalog administration routes on the
// given (possibly JWT-protected) group.
func (r *StoreRoutes) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/combos", r.catalogHandler.UpdateCatalog)
	rg.PUT("/combos/:id/items", r.catalogHandler.UpdateComboItems)
	rg.GET("/combos-history", r.catalogHandler.CatalogHistory)
}

// GetHandler returns the underlying quote handler.
func (r *StoreRoutes) GetHandler() *Handler {
	return r.handler
}
