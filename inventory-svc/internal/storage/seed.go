package storage

import "restaurant-pos/inventory-svc/internal/domain"

var starterItems = []domain.InventoryItem{
	{Name: "Beef Patty", Stock: 45, Unit: "each", ReorderLevel: 20, CostPerUnit: 1.50},
	{Name: "Burger Bun", Stock: 32, Unit: "each", ReorderLevel: 30, CostPerUnit: 0.40},
	{Name: "Lettuce", Stock: 8, Unit: "head", ReorderLevel: 10, CostPerUnit: 1.20},
	{Name: "Chicken Wings", Stock: 0, Unit: "lb", ReorderLevel: 15, CostPerUnit: 3.25},
	{Name: "Frying Oil", Stock: 5, Unit: "gal", ReorderLevel: 2, CostPerUnit: 8.00},
	{Name: "Soda Syrup", Stock: 3, Unit: "box", ReorderLevel: 4, CostPerUnit: 12.00},
	{Name: "Cheese", Stock: 50, Unit: "slice", ReorderLevel: 20, CostPerUnit: 0.25},
	{Name: "Bacon", Stock: 15, Unit: "lb", ReorderLevel: 10, CostPerUnit: 4.50},
}

var starterRecipes = []domain.Recipe{
	{MenuItemName: "Classic Burger", Ingredients: []domain.RecipeIngredient{
		{IngredientName: "Beef Patty", QuantityPerUnit: 1},
		{IngredientName: "Burger Bun", QuantityPerUnit: 1},
		{IngredientName: "Lettuce", QuantityPerUnit: 0.1},
	}},
	{MenuItemName: "Cheeseburger", Ingredients: []domain.RecipeIngredient{
		{IngredientName: "Beef Patty", QuantityPerUnit: 1},
		{IngredientName: "Burger Bun", QuantityPerUnit: 1},
		{IngredientName: "Cheese", QuantityPerUnit: 2},
	}},
	{MenuItemName: "Chicken Wings", Ingredients: []domain.RecipeIngredient{
		{IngredientName: "Chicken Wings", QuantityPerUnit: 1},
		{IngredientName: "Frying Oil", QuantityPerUnit: 0.05},
	}},
	{MenuItemName: "French Fries", Ingredients: []domain.RecipeIngredient{
		{IngredientName: "Frying Oil", QuantityPerUnit: 0.02},
	}},
	{MenuItemName: "Soda", Ingredients: []domain.RecipeIngredient{
		{IngredientName: "Soda Syrup", QuantityPerUnit: 0.01},
	}},
}

// SeedDefaults loads the starter stock room and recipes into an empty
// database so the dashboard is usable out of the box.
func (r *PostgresRepository) SeedDefaults() error {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM inventory_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range starterItems {
		item.Status = domain.StatusFor(item.Stock, item.ReorderLevel)
		if err := r.CreateItem(&item); err != nil {
			return err
		}
	}

	for i := range starterRecipes {
		if err := r.SaveRecipe(&starterRecipes[i]); err != nil {
			return err
		}
	}
	return nil
}
