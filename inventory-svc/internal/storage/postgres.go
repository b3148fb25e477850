package storage

import (
	"database/sql"
	"fmt"

	"restaurant-pos/inventory-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the inventory tables. The POS service creates the
// same tables, whichever starts first wins.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS inventory_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			stock NUMERIC NOT NULL DEFAULT 0,
			unit TEXT,
			reorder_level NUMERIC NOT NULL DEFAULT 0,
			cost_per_unit NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'ok'
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_transactions (
			id BIGSERIAL PRIMARY KEY,
			item_id INT,
			item_name TEXT NOT NULL,
			kind TEXT NOT NULL,
			quantity NUMERIC NOT NULL,
			staff_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			id SERIAL PRIMARY KEY,
			menu_item_name TEXT NOT NULL,
			ingredient_name TEXT NOT NULL,
			quantity_per_unit NUMERIC NOT NULL,
			UNIQUE (menu_item_name, ingredient_name)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListItems() ([]domain.InventoryItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, stock, COALESCE(unit, ''), reorder_level, cost_per_unit, status
		FROM inventory_items
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		err := rows.Scan(&item.ID, &item.Name, &item.Stock, &item.Unit,
			&item.ReorderLevel, &item.CostPerUnit, &item.Status)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetItem(id int) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.DB.QueryRow(`
		SELECT id, name, stock, COALESCE(unit, ''), reorder_level, cost_per_unit, status
		FROM inventory_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Stock, &item.Unit,
			&item.ReorderLevel, &item.CostPerUnit, &item.Status)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateItem(item *domain.InventoryItem) error {
	return r.DB.QueryRow(`
		INSERT INTO inventory_items (name, stock, unit, reorder_level, cost_per_unit, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		item.Name, item.Stock, item.Unit, item.ReorderLevel, item.CostPerUnit, item.Status).
		Scan(&item.ID)
}

func (r *PostgresRepository) UpdateItem(item *domain.InventoryItem) error {
	_, err := r.DB.Exec(`
		UPDATE inventory_items
		SET name = $1, stock = $2, unit = $3, reorder_level = $4, cost_per_unit = $5, status = $6
		WHERE id = $7`,
		item.Name, item.Stock, item.Unit, item.ReorderLevel, item.CostPerUnit, item.Status, item.ID)
	return err
}

// AdjustStock applies a delta and logs the movement in one transaction.
func (r *PostgresRepository) AdjustStock(id int, delta float64, kind, staffName string) (*domain.InventoryItem, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var item domain.InventoryItem
	err = tx.QueryRow(`
		UPDATE inventory_items
		SET stock = GREATEST(stock + $1, 0),
		    status = CASE
		        WHEN GREATEST(stock + $1, 0) <= 0 THEN 'out'
		        WHEN GREATEST(stock + $1, 0) <= reorder_level THEN 'low'
		        ELSE 'ok'
		    END
		WHERE id = $2
		RETURNING id, name, stock, COALESCE(unit, ''), reorder_level, cost_per_unit, status`,
		delta, id).
		Scan(&item.ID, &item.Name, &item.Stock, &item.Unit,
			&item.ReorderLevel, &item.CostPerUnit, &item.Status)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(`
		INSERT INTO inventory_transactions (item_id, item_name, kind, quantity, staff_name)
		VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.Name, kind, delta, staffName)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListTransactions(limit int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	rows, err := r.DB.Query(`
		SELECT id, COALESCE(item_id, 0), item_name, kind, quantity, COALESCE(staff_name, ''), created_at
		FROM inventory_transactions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.Kind, &t.Quantity, &t.StaffName, &t.CreatedAt)
		if err != nil {
			continue
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r *PostgresRepository) ListRecipes() ([]domain.Recipe, error) {
	rows, err := r.DB.Query(`
		SELECT menu_item_name, ingredient_name, quantity_per_unit
		FROM recipe_ingredients
		ORDER BY menu_item_name, ingredient_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]int)
	var recipes []domain.Recipe
	for rows.Next() {
		var menuItem string
		var ing domain.RecipeIngredient
		if err := rows.Scan(&menuItem, &ing.IngredientName, &ing.QuantityPerUnit); err != nil {
			continue
		}
		i, ok := index[menuItem]
		if !ok {
			i = len(recipes)
			index[menuItem] = i
			recipes = append(recipes, domain.Recipe{MenuItemName: menuItem})
		}
		recipes[i].Ingredients = append(recipes[i].Ingredients, ing)
	}
	return recipes, nil
}

// SaveRecipe replaces the whole ingredient list for a menu item.
func (r *PostgresRepository) SaveRecipe(recipe *domain.Recipe) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE menu_item_name = $1`, recipe.MenuItemName); err != nil {
		return err
	}

	for _, ing := range recipe.Ingredients {
		_, err := tx.Exec(`
			INSERT INTO recipe_ingredients (menu_item_name, ingredient_name, quantity_per_unit)
			VALUES ($1, $2, $3)`,
			recipe.MenuItemName, ing.IngredientName, ing.QuantityPerUnit)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) DeleteRecipe(menuItemName string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM recipe_ingredients WHERE menu_item_name = $1`, menuItemName)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// RecipeLinesForMenuItem resolves the menu item by id, then joins its
// recipe against current inventory levels.
func (r *PostgresRepository) RecipeLinesForMenuItem(menuItemID int) ([]domain.RecipeLine, error) {
	var menuItemName string
	err := r.DB.QueryRow(`SELECT name FROM menu_items WHERE id = $1`, menuItemID).Scan(&menuItemName)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT ri.ingredient_name, ri.quantity_per_unit, COALESCE(ii.stock, 0), ii.id IS NOT NULL
		FROM recipe_ingredients ri
		LEFT JOIN inventory_items ii ON ii.name = ri.ingredient_name
		WHERE ri.menu_item_name = $1`, menuItemName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.RecipeLine
	for rows.Next() {
		var line domain.RecipeLine
		if err := rows.Scan(&line.IngredientName, &line.QuantityPerUnit, &line.Stock, &line.Tracked); err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
