// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// The selection may be incomplete; the quote endpoint prices whatever is
// there so the storefront can show a live total while the customer picks.
//
// @Description Request to price a combo selection
// @Example {"combo_id": 1, "selected_items": [101, 104], "additional_items": [107]}
type QuoteRequest struct {
	// ComboID identifies the combo being customized.
	ComboID int `json:"combo_id" binding:"required,gt=0" example:"1" minimum:"1"`
	// BaseChoice is the chosen base item id, when the combo takes one.
	BaseChoice *int `json:"base_choice,omitempty" example:"2"`
	// SelectedItems are the entree picks, in selection order.
	SelectedItems []int `json:"selected_items" example:"101,104"`
	// AdditionalItems are paid extras, in selection order.
	AdditionalItems []int `json:"additional_items" example:"107"`
} // @name QuoteRequest

// Validate performs custom validation on the quote request.
// Returns an error if validation fails, nil otherwise.
func (r *QuoteRequest) Validate() error {
	if r.ComboID <= 0 {
		return &ValidationError{Field: "combo_id", Message: "must be a positive integer"}
	}
	seen := make(map[int]struct{}, len(r.SelectedItems)+len(r.AdditionalItems))
	for _, id := range r.SelectedItems {
		if _, dup := seen[id]; dup {
			return &ValidationError{Field: "selected_items", Message: "item ids must be unique across both pools"}
		}
		seen[id] = struct{}{}
	}
	for _, id := range r.AdditionalItems {
		if _, dup := seen[id]; dup {
			return &ValidationError{Field: "additional_items", Message: "item ids must be unique across both pools"}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Selection converts the request into a domain selection.
func (r *QuoteRequest) Selection() model.Selection {
	sel := model.Selection{
		ComboID:         r.ComboID,
		BaseChoice:      r.BaseChoice,
		SelectedItems:   r.SelectedItems,
		AdditionalItems: r.AdditionalItems,
	}
	if sel.SelectedItems == nil {
		sel.SelectedItems = []int{}
	}
	if sel.AdditionalItems == nil {
		sel.AdditionalItems = []int{}
	}
	return sel
}

// StartSessionRequest represents the JSON request body for opening a
// customization session.
//
// @Description Request to start customizing a combo
// @Example {"combo_id": 1}
type StartSessionRequest struct {
	// ComboID identifies the combo to customize.
	ComboID int `json:"combo_id" binding:"required,gt=0" example:"1" minimum:"1"`
} // @name StartSessionRequest

// Validate performs custom validation on the start session request.
func (r *StartSessionRequest) Validate() error {
	if r.ComboID <= 0 {
		return &ValidationError{Field: "combo_id", Message: "must be a positive integer"}
	}
	return nil
}

// SetBaseRequest represents the JSON request body for choosing a combo base.
//
// @Description Request to set the base choice of a session
// @Example {"item_id": 2}
type SetBaseRequest struct {
	// ItemID is the base option to select.
	ItemID int `json:"item_id" binding:"required,gt=0" example:"2" minimum:"1"`
} // @name SetBaseRequest

// Validate performs custom validation on the set base request.
func (r *SetBaseRequest) Validate() error {
	if r.ItemID <= 0 {
		return &ValidationError{Field: "item_id", Message: "must be a positive integer"}
	}
	return nil
}

// AddItemRequest represents the JSON request body for adding an ordinary
// menu item to a cart.
//
// @Description Request to add a menu item to the cart
// @Example {"item_id": "42", "name": "Wonton Soup", "price": 8.50, "quantity": 1}
type AddItemRequest struct {
	// ItemID is the catalog id of the item; it doubles as the cart line id.
	ItemID string `json:"item_id" binding:"required" example:"42"`
	// Name is the display name snapshot.
	Name string `json:"name" binding:"required" example:"Wonton Soup"`
	// Price is the unit price.
	Price model.Cents `json:"price" example:"8.50"`
	// Quantity is how many units to add; defaults to 1.
	Quantity int `json:"quantity,omitempty" example:"1"`
} // @name AddItemRequest

// Validate performs custom validation on the add item request.
func (r *AddItemRequest) Validate() error {
	if r.ItemID == "" {
		return &ValidationError{Field: "item_id", Message: "item_id is required"}
	}
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if r.Price < 0 {
		return &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	if r.Quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "quantity cannot be negative"}
	}
	return nil
}

// AddComboRequest represents the JSON request body for moving a finalized
// customization session into a cart.
//
// @Description Request to add a completed combo session to the cart
// @Example {"session_id": "550e8400-e29b-41d4-a716-446655440000"}
type AddComboRequest struct {
	// SessionID is the customization session to finalize.
	SessionID string `json:"session_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name AddComboRequest

// Validate performs custom validation on the add combo request.
func (r *AddComboRequest) Validate() error {
	if r.SessionID == "" {
		return &ValidationError{Field: "session_id", Message: "session_id is required"}
	}
	return nil
}

// UpdateCatalogRequest represents the JSON request body for replacing the
// combo catalog.
type UpdateCatalogRequest struct {
	// Combos is the full replacement catalog.
	Combos []ComboUpdate `json:"combos" binding:"required,min=1"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateCatalogRequest

// ComboUpdate is one combo definition inside a catalog update.
type ComboUpdate struct {
	model.Combo
	// Items is the selectable pool for this combo.
	Items []model.MenuItem `json:"items"`
} // @name ComboUpdate

// Validate performs custom validation on the catalog update request.
func (r *UpdateCatalogRequest) Validate() error {
	if len(r.Combos) == 0 {
		return &ValidationError{Field: "combos", Message: "at least one combo is required"}
	}
	seen := make(map[int]struct{}, len(r.Combos))
	for _, combo := range r.Combos {
		if combo.ID <= 0 {
			return &ValidationError{Field: "combos", Message: "combo ids must be positive"}
		}
		if _, dup := seen[combo.ID]; dup {
			return &ValidationError{Field: "combos", Message: "combo ids must be unique"}
		}
		seen[combo.ID] = struct{}{}
		if combo.Pricing == model.PricingLadder && combo.Ladder == nil {
			return &ValidationError{Field: "combos", Message: "ladder-priced combos need ladder parameters"}
		}
	}
	return nil
}

// UpdateItemsRequest represents the JSON request body for replacing a
// combo's item pool.
type UpdateItemsRequest struct {
	// Items is the full replacement pool.
	Items []model.MenuItem `json:"items" binding:"required"`
	// UpdatedBy is the identifier of who made the change.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateItemsRequest

// Validate performs custom validation on the items update request.
func (r *UpdateItemsRequest) Validate() error {
	seen := make(map[int]struct{}, len(r.Items))
	for _, item := range r.Items {
		if item.ID <= 0 {
			return &ValidationError{Field: "items", Message: "item ids must be positive"}
		}
		if _, dup := seen[item.ID]; dup {
			return &ValidationError{Field: "items", Message: "item ids must be unique"}
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
