package model

// ItemPrice is the price attributed to a single chosen item inside a quote.
//
// @Description Per-item price line of a combo quote
type ItemPrice struct {
	// ItemID is the menu item this line refers to
	ItemID int `json:"item_id" example:"104"`
	// Position is the 1-based position of the item in the pooled selection
	Position int `json:"position" example:"3"`
	// Price is the marginal price charged for this item
	Price Cents `json:"price" example:"3.00"`
	// Additional marks items from the paid-extras pool
	Additional bool `json:"additional"`
}

// Quote is the priced view of a combo selection. It is valid for incomplete
// selections so the storefront can display a running total while the
// customer is still choosing.
//
// @Description Combo selection quote with total and per-item breakdown
type Quote struct {
	// ComboID is the combo being quoted
	ComboID int `json:"combo_id" example:"1"`
	// Total is the price of the selection as it stands
	Total Cents `json:"total" example:"20.95"`
	// Items is the per-item price breakdown in pool order
	Items []ItemPrice `json:"items"`
	// NextItemPrice is what one more item would cost
	NextItemPrice Cents `json:"next_item_price" example:"7.00"`
	// Complete reports whether the selection satisfies the combo's rules
	Complete bool `json:"complete"`
}

// PriceCurve is the selection-independent part of a quote. It depends only
// on the combo and the sizes of the two selection pools, which makes it the
// unit of caching for the pricing engine.
type PriceCurve struct {
	// Total is the price at this pool shape
	Total Cents
	// Marginals holds the marginal price of each pooled position, 0-indexed
	Marginals []Cents
	// NextItemPrice is the marginal price of one more item
	NextItemPrice Cents
}

// EmptyQuote returns a zero quote for the given combo.
func EmptyQuote(comboID int) Quote {
	return Quote{
		ComboID: comboID,
		Items:   []ItemPrice{},
	}
}
