package model

// Selection holds the evolving choices of one combo customization session.
//
// SelectedItems and AdditionalItems are insertion-ordered, duplicate-free,
// and disjoint; ordering matters because the user-facing per-item price
// hints are position dependent.
//
// @Description Combo customization state
type Selection struct {
	// ComboID is the combo being customized
	ComboID int `json:"combo_id" example:"1"`
	// BaseChoice is the chosen base item id, if any
	BaseChoice *int `json:"base_choice,omitempty"`
	// SelectedItems are the entree picks filling the combo's included slots
	SelectedItems []int `json:"selected_items"`
	// AdditionalItems are paid extras beyond the included slots
	AdditionalItems []int `json:"additional_items"`
}

// ItemCount returns the combined size of both pools.
func (s Selection) ItemCount() int {
	return len(s.SelectedItems) + len(s.AdditionalItems)
}

// HasSelected reports whether the item is in the entree pool.
func (s Selection) HasSelected(itemID int) bool {
	return containsInt(s.SelectedItems, itemID)
}

// HasAdditional reports whether the item is in the extras pool.
func (s Selection) HasAdditional(itemID int) bool {
	return containsInt(s.AdditionalItems, itemID)
}

// IsComplete reports whether the selection satisfies the combo's rules:
// all entree slots filled and, for base-choice combos, a base chosen.
func (s Selection) IsComplete(combo Combo) bool {
	if len(s.SelectedItems) != combo.MaxSelections() {
		return false
	}
	if combo.RequiresBaseChoice && s.BaseChoice == nil {
		return false
	}
	return true
}

// ToggleSelected flips the item's membership in the entree pool. Adding is
// refused once the pool holds max items; removal is always allowed.
// Returns whether the item is present after the call, and whether the
// request was applied.
func (s *Selection) ToggleSelected(itemID, max int) (present, applied bool) {
	if s.HasSelected(itemID) {
		s.SelectedItems = removeInt(s.SelectedItems, itemID)
		return false, true
	}
	if len(s.SelectedItems) >= max {
		return false, false
	}
	s.SelectedItems = append(s.SelectedItems, itemID)
	return true, true
}

// ToggleAdditional flips the item's membership in the extras pool.
// Returns whether the item is present after the call.
func (s *Selection) ToggleAdditional(itemID int) (present bool) {
	if s.HasAdditional(itemID) {
		s.AdditionalItems = removeInt(s.AdditionalItems, itemID)
		return false
	}
	s.AdditionalItems = append(s.AdditionalItems, itemID)
	return true
}

// Clone returns a deep copy so callers can hold the state without racing
// against further mutation.
func (s Selection) Clone() Selection {
	out := Selection{ComboID: s.ComboID}
	if s.BaseChoice != nil {
		v := *s.BaseChoice
		out.BaseChoice = &v
	}
	out.SelectedItems = append([]int{}, s.SelectedItems...)
	out.AdditionalItems = append([]int{}, s.AdditionalItems...)
	return out
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeInt(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
