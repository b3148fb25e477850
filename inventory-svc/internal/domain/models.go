package domain

import "time"

const (
	StatusOK  = "ok"
	StatusLow = "low"
	StatusOut = "out"
)

// StatusFor derives the stock status. Depleted stock wins over the
// reorder threshold.
func StatusFor(stock, reorderLevel float64) string {
	switch {
	case stock <= 0:
		return StatusOut
	case stock <= reorderLevel:
		return StatusLow
	default:
		return StatusOK
	}
}

type InventoryItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Stock        float64 `json:"stock"`
	Unit         string  `json:"unit"`
	ReorderLevel float64 `json:"reorder_level"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Status       string  `json:"status"`
}

// Transaction is one stock movement. Receipts are positive, order
// depletions negative.
type Transaction struct {
	ID        int       `json:"id"`
	ItemID    int       `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Kind      string    `json:"kind"`
	Quantity  float64   `json:"quantity"`
	StaffName string    `json:"staff_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RecipeIngredient struct {
	IngredientName  string  `json:"ingredient_name"`
	QuantityPerUnit float64 `json:"quantity_per_unit"`
}

type Recipe struct {
	MenuItemName string             `json:"menu_item_name"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// RecipeLine joins a recipe ingredient with the current inventory level.
// Ingredients without a tracked inventory row carry Tracked false.
type RecipeLine struct {
	IngredientName  string
	QuantityPerUnit float64
	Stock           float64
	Tracked         bool
}

type Shortage struct {
	IngredientName string  `json:"ingredient_name"`
	Required       float64 `json:"required"`
	Available      float64 `json:"available"`
}

// Shortages reports which ingredients cannot cover the requested number
// of portions. Untracked ingredients never block an order.
func Shortages(lines []RecipeLine, portions int) []Shortage {
	var shortages []Shortage
	for _, line := range lines {
		if !line.Tracked {
			continue
		}
		required := line.QuantityPerUnit * float64(portions)
		if line.Stock < required {
			shortages = append(shortages, Shortage{
				IngredientName: line.IngredientName,
				Required:       required,
				Available:      line.Stock,
			})
		}
	}
	return shortages
}
