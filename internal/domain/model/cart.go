package model

import (
	"fmt"
	"time"
)

// CartLineItem represents one entry in a shopping cart.
//
// Ordinary menu items use their catalog id as the line id and merge by
// quantity. Combo items carry a synthesized unique line id so that two
// customizations of the same combo never collide.
//
// @Description Cart line item with a frozen unit price
type CartLineItem struct {
	// LineID identifies the line within the cart
	LineID string `bson:"line_id" json:"line_id" example:"combo-1-1706454000000000000"`
	// Name is the display name snapshot
	Name string `bson:"name" json:"name" example:"Combo for One"`
	// Price is the unit price, frozen at add time
	Price Cents `bson:"price" json:"price" example:"20.95"`
	// Quantity is the number of units, always >= 1
	Quantity int `bson:"quantity" json:"quantity" example:"1"`
	// IsCombo marks a customized combo line
	IsCombo bool `bson:"is_combo" json:"is_combo"`
	// ComboID is the combo's catalog id; combo lines only
	ComboID int `bson:"combo_id,omitempty" json:"combo_id,omitempty" example:"1"`
	// SelectedItems are the entree picks; combo lines only
	SelectedItems []int `bson:"selected_items,omitempty" json:"selected_items,omitempty"`
	// AdditionalItems are the paid extras; combo lines only
	AdditionalItems []int `bson:"additional_items,omitempty" json:"additional_items,omitempty"`
	// BaseChoice is the base selection; combo lines only
	BaseChoice *int `bson:"base_choice,omitempty" json:"base_choice,omitempty"`
	// ComboDetails is a display-metadata snapshot for receipt rendering
	ComboDetails *Combo `bson:"combo_details,omitempty" json:"combo_details,omitempty"`
}

// Total returns price times quantity for this line.
func (l CartLineItem) Total() Cents {
	return l.Price * Cents(l.Quantity)
}

// NewComboLineID synthesizes a unique line id for a combo customization.
func NewComboLineID(comboID int, at time.Time) string {
	return fmt.Sprintf("combo-%d-%d", comboID, at.UnixNano())
}

// Cart represents a shopping session's cart.
//
// @Description Shopping cart
type Cart struct {
	// ID is the cart identifier
	ID string `bson:"_id" json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Items are the cart lines in insertion order
	Items []CartLineItem `bson:"items" json:"items"`
	// CreatedAt is when the cart was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt is bumped on every mutation
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Count returns the sum of quantities across all lines.
func (c Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the sum of price times quantity across all lines.
func (c Cart) Subtotal() Cents {
	var total Cents
	for _, item := range c.Items {
		total += item.Total()
	}
	return total
}

// Find returns a pointer to the line with the given id, or nil.
func (c *Cart) Find(lineID string) *CartLineItem {
	for i := range c.Items {
		if c.Items[i].LineID == lineID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove deletes the line with the given id. Unknown ids are ignored.
func (c *Cart) Remove(lineID string) {
	out := c.Items[:0]
	for _, item := range c.Items {
		if item.LineID != lineID {
			out = append(out, item)
		}
	}
	c.Items = out
}
