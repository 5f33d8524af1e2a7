package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLadderPricing_Total(t *testing.T) {
	ladder := LadderPricing{
		IncludedItems:  2,
		IncludedTotal:  1795,
		NextItemTotal:  2095,
		ExtraItemPrice: 700,
	}

	tests := []struct {
		count    int
		expected Cents
	}{
		{0, 1795},
		{1, 1795},
		{2, 1795},
		{3, 2095},
		{4, 2795},
		{5, 3495},
		{10, 6995},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ladder.Total(tt.count), "count %d", tt.count)
	}
}

func TestLadderPricing_Marginal(t *testing.T) {
	ladder := LadderPricing{
		IncludedItems:  2,
		IncludedTotal:  1795,
		NextItemTotal:  2095,
		ExtraItemPrice: 700,
	}

	assert.Equal(t, Cents(0), ladder.Marginal(1))
	assert.Equal(t, Cents(0), ladder.Marginal(2))
	assert.Equal(t, Cents(300), ladder.Marginal(3))
	assert.Equal(t, Cents(700), ladder.Marginal(4))
	assert.Equal(t, Cents(700), ladder.Marginal(9))
}

func TestLadderPricing_TotalsTelescope(t *testing.T) {
	ladder := LadderPricing{
		IncludedItems:  2,
		IncludedTotal:  1795,
		NextItemTotal:  2095,
		ExtraItemPrice: 700,
	}

	// Total(n) must equal Total(n-1) + Marginal(n) for every position
	for n := 1; n <= 12; n++ {
		assert.Equal(t, ladder.Total(n), ladder.Total(n-1)+ladder.Marginal(n), "position %d", n)
	}
}

func TestCombo_MaxSelections(t *testing.T) {
	tests := []struct {
		name     string
		combo    Combo
		expected int
	}{
		{
			name: "base-choice combo uses required entree count",
			combo: Combo{
				RequiresBaseChoice:  true,
				RequiredEntreeCount: 2,
				BaseItemCount:       5,
				SpringRollsIncluded: 2,
			},
			expected: 2,
		},
		{
			name: "pool combo subtracts bundled items",
			combo: Combo{
				BaseItemCount:       3,
				SpringRollsIncluded: 1,
			},
			expected: 2,
		},
		{
			name: "never negative",
			combo: Combo{
				BaseItemCount:       1,
				SpringRollsIncluded: 4,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.combo.MaxSelections())
		})
	}
}
