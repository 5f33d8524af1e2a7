package service

import (
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/repository"
)

// Default menu item ids. Entrees fill combo selection slots; base options
// (chow mein / fried rice) are the mutually exclusive base choice of the
// dinner combos.
var defaultBaseOptions = []model.MenuItem{
	{ID: 1, Name: "Chicken Chow Mein"},
	{ID: 2, Name: "Chicken Fried Rice"},
	{ID: 3, Name: "Steamed Rice"},
}

var defaultEntrees = []model.MenuItem{
	{ID: 101, Name: "Sweet and Sour Pork", IsEntree: true},
	{ID: 102, Name: "Honey Garlic Boneless Pork", IsEntree: true},
	{ID: 103, Name: "Deep Fried Prawns", IsEntree: true},
	{ID: 104, Name: "Beef with Broccoli", IsEntree: true},
	{ID: 105, Name: "Breaded Almond Chicken", IsEntree: true},
	{ID: 106, Name: "Chicken Balls", IsEntree: true},
	{ID: 107, Name: "Lemon Chicken", IsEntree: true},
	{ID: 108, Name: "Beef Chop Suey", IsEntree: true},
	{ID: 109, Name: "Ginger Beef", IsEntree: true},
	{ID: 110, Name: "Szechuan Chicken", IsEntree: true},
	{ID: 111, Name: "Mushroom Egg Foo Yong", IsEntree: true},
	{ID: 112, Name: "Curry Chicken", IsEntree: true},
}

// defaultItems is the full selectable pool shared by the dinner combos.
func defaultItems() []model.MenuItem {
	items := make([]model.MenuItem, 0, len(defaultBaseOptions)+len(defaultEntrees))
	items = append(items, defaultBaseOptions...)
	items = append(items, defaultEntrees...)
	return items
}

// dinnerCombo builds a base-choice dinner combo definition.
func dinnerCombo(id int, name string, basePrice model.Cents, entreeCount, springRolls int) repository.ComboDefinition {
	return repository.ComboDefinition{
		Combo: model.Combo{
			ID:                  id,
			Name:                name,
			Description:         "Includes your choice of chow mein or fried rice",
			BasePrice:           basePrice,
			BaseItemCount:       entreeCount + springRolls,
			SpringRollsIncluded: springRolls,
			AdditionalItemPrice: 400,
			RequiresBaseChoice:  true,
			RequiredEntreeCount: entreeCount,
			Pricing:             model.PricingLinear,
		},
		Items: defaultItems(),
	}
}

// DefaultCatalog returns the standard combination menu served when MongoDB
// holds no catalog configuration. A fresh slice is returned on every call so
// callers can mutate their copy.
func DefaultCatalog() []repository.ComboDefinition {
	forOne := repository.ComboDefinition{
		Combo: model.Combo{
			ID:            1,
			Name:          "Dinner for One",
			Description:   "Pick any two items, add more as you like",
			BasePrice:     1795,
			BaseItemCount: 2,
			Pricing:       model.PricingLadder,
			Ladder: &model.LadderPricing{
				IncludedItems:  2,
				IncludedTotal:  1795,
				NextItemTotal:  2095,
				ExtraItemPrice: 700,
			},
		},
		Items: append([]model.MenuItem{}, defaultEntrees...),
	}

	return []repository.ComboDefinition{
		forOne,
		dinnerCombo(2, "Dinner for Two", 2295, 2, 2),
		dinnerCombo(3, "Dinner for Three", 3395, 3, 3),
		dinnerCombo(4, "Dinner for Four", 4495, 4, 4),
		dinnerCombo(5, "Dinner for Six", 6595, 5, 6),
		dinnerCombo(6, "Dinner for Eight", 8795, 7, 8),
		dinnerCombo(7, "Dinner for Ten", 10895, 9, 10),
	}
}
