package domain

import "time"

// BackupBundle is the one-shot JSON export of every persisted collection.
// Importing a bundle reproduces the same entity set.
type BackupBundle struct {
	ExportedAt            time.Time             `json:"exported_at"`
	RestaurantInfo        *RestaurantInfo       `json:"restaurant_info,omitempty"`
	Staff                 []BackupStaff         `json:"staff"`
	MenuItems             []MenuItem            `json:"menu_items"`
	Specials              []Special             `json:"specials"`
	InventoryItems        []BackupInventoryItem `json:"inventory_items"`
	Recipes               []BackupRecipe        `json:"recipes"`
	KitchenOrders         []BackupKitchenOrder  `json:"kitchen_orders"`
	Orders                []Order               `json:"orders"`
	InventoryTransactions []BackupTransaction   `json:"inventory_transactions"`
}

type BackupTransaction struct {
	ID        int       `json:"id"`
	ItemID    int       `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Kind      string    `json:"kind"`
	Quantity  float64   `json:"quantity"`
	StaffName string    `json:"staff_name"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupStaff carries the PIN hash that the regular Staff JSON hides.
type BackupStaff struct {
	Staff
	PINHash string `json:"pin_hash"`
}

type BackupInventoryItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Stock        float64 `json:"stock"`
	Unit         string  `json:"unit"`
	ReorderLevel float64 `json:"reorder_level"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Status       string  `json:"status"`
}

type BackupIngredient struct {
	IngredientName  string  `json:"ingredient_name"`
	QuantityPerUnit float64 `json:"quantity_per_unit"`
}

type BackupRecipe struct {
	MenuItemName string             `json:"menu_item_name"`
	Ingredients  []BackupIngredient `json:"ingredients"`
}

type BackupKitchenOrder struct {
	ID         int          `json:"id"`
	OrderID    int          `json:"order_id"`
	TableLabel string       `json:"table_label"`
	Status     string       `json:"status"`
	Items      []TicketItem `json:"items"`
	CreatedBy  string       `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
}
