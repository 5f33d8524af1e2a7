package model

// PricingStrategy selects how a combo's total is computed.
type PricingStrategy string

const (
	// PricingLinear prices a combo as base price plus a flat amount per
	// additional item.
	PricingLinear PricingStrategy = "linear"
	// PricingLadder prices a combo as a step function of the combined
	// item count (selected + additional pooled together).
	PricingLadder PricingStrategy = "ladder"
)

// LadderPricing describes a step-function price ladder.
//
// The total for a combined item count n is:
//
//	n <= IncludedItems            -> IncludedTotal
//	n == IncludedItems+1          -> NextItemTotal
//	n >  IncludedItems+1          -> NextItemTotal + (n-IncludedItems-1)*ExtraItemPrice
//
// @Description Step-function pricing ladder for a combo
type LadderPricing struct {
	// IncludedItems is the number of items covered by the base total
	IncludedItems int `bson:"included_items" json:"included_items" example:"2"`
	// IncludedTotal is the flat total up to and including IncludedItems
	IncludedTotal Cents `bson:"included_total" json:"included_total" example:"17.95"`
	// NextItemTotal is the total once one item beyond IncludedItems is chosen
	NextItemTotal Cents `bson:"next_item_total" json:"next_item_total" example:"20.95"`
	// ExtraItemPrice is the marginal price of every item after that
	ExtraItemPrice Cents `bson:"extra_item_price" json:"extra_item_price" example:"7.00"`
}

// Total returns the ladder total for the given combined item count.
func (l LadderPricing) Total(count int) Cents {
	switch {
	case count <= l.IncludedItems:
		return l.IncludedTotal
	case count == l.IncludedItems+1:
		return l.NextItemTotal
	default:
		return l.NextItemTotal + Cents(count-l.IncludedItems-1)*l.ExtraItemPrice
	}
}

// Marginal returns the price of adding the item at the given 1-based
// position, consistent with Total: Total(n) == Total(n-1) + Marginal(n).
func (l LadderPricing) Marginal(position int) Cents {
	switch {
	case position <= l.IncludedItems:
		return 0
	case position == l.IncludedItems+1:
		return l.NextItemTotal - l.IncludedTotal
	default:
		return l.ExtraItemPrice
	}
}

// Combo represents a bundled meal offering from the combination menu.
//
// Selection rules and the pricing strategy are explicit fields so that new
// combo types can be added through catalog configuration alone.
//
// @Description Combo meal definition with selection rules and pricing strategy
type Combo struct {
	// ID is the combo's catalog identifier
	ID int `bson:"id" json:"id" example:"1"`
	// Name is the display name
	Name string `bson:"name" json:"name" example:"Dinner for Two"`
	// Description is the display description
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	// BasePrice is the price of the default/minimum selection
	BasePrice Cents `bson:"base_price" json:"base_price" example:"22.95"`
	// BaseItemCount is the total items included in the base combo
	BaseItemCount int `bson:"base_item_count" json:"base_item_count" example:"2"`
	// SpringRollsIncluded is the number of bundled free items; they reduce
	// the entree slots the customer fills
	SpringRollsIncluded int `bson:"spring_rolls_included" json:"spring_rolls_included" example:"1"`
	// AdditionalItemPrice is the flat marginal price per extra item for
	// linear-priced combos
	AdditionalItemPrice Cents `bson:"additional_item_price" json:"additional_item_price" example:"4.00"`
	// RequiresBaseChoice indicates the combo needs a separate mutually
	// exclusive base selection (e.g. chow mein vs fried rice)
	RequiresBaseChoice bool `bson:"requires_base_choice" json:"requires_base_choice"`
	// RequiredEntreeCount is the fixed entree slot count for base-choice
	// combos; ignored otherwise
	RequiredEntreeCount int `bson:"required_entree_count" json:"required_entree_count" example:"2"`
	// Pricing selects the pricing strategy
	Pricing PricingStrategy `bson:"pricing" json:"pricing" example:"linear"`
	// Ladder holds the ladder parameters; required when Pricing is "ladder"
	Ladder *LadderPricing `bson:"ladder,omitempty" json:"ladder,omitempty"`
}

// MaxSelections returns the number of entree slots the customer must fill.
func (c Combo) MaxSelections() int {
	if c.RequiresBaseChoice {
		return c.RequiredEntreeCount
	}
	n := c.BaseItemCount - c.SpringRollsIncluded
	if n < 0 {
		return 0
	}
	return n
}

// MenuItem represents an item selectable inside a combo.
//
// @Description Selectable combo item
type MenuItem struct {
	// ID is the menu item's catalog identifier
	ID int `bson:"id" json:"id" example:"101"`
	// Name is the display name
	Name string `bson:"name" json:"name" example:"Sweet and Sour Pork"`
	// Description is the display description
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	// IsEntree partitions the pool: entree options fill selection slots,
	// non-entree options are base-choice candidates
	IsEntree bool `bson:"is_entree" json:"is_entree"`
}
