package storage

import (
	"database/sql"
	"encoding/json"

	"restaurant-pos/pos-svc/internal/domain"
)

// Export bundles every persisted collection into one document.
func (r *PostgresRepository) Export() (*domain.BackupBundle, error) {
	bundle := &domain.BackupBundle{}

	info, err := r.GetRestaurantInfo()
	if err != nil {
		return nil, err
	}
	bundle.RestaurantInfo = info

	staff, err := r.ListStaff()
	if err != nil {
		return nil, err
	}
	for _, member := range staff {
		bundle.Staff = append(bundle.Staff, domain.BackupStaff{Staff: member, PINHash: member.PINHash})
	}

	if err := r.exportMenu(bundle); err != nil {
		return nil, err
	}
	if err := r.exportInventory(bundle); err != nil {
		return nil, err
	}
	if err := r.exportKitchenOrders(bundle); err != nil {
		return nil, err
	}

	orders, err := r.ListOrders(salesHistoryLimit)
	if err != nil {
		return nil, err
	}
	bundle.Orders = orders

	return bundle, nil
}

func (r *PostgresRepository) exportMenu(bundle *domain.BackupBundle) error {
	rows, err := r.DB.Query(`
		SELECT id, name, price, COALESCE(category, ''), is_available, created_at
		FROM menu_items
		ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Available, &item.CreatedAt); err != nil {
			continue
		}
		bundle.MenuItems = append(bundle.MenuItems, item)
	}

	specials, err := r.ListSpecials()
	if err != nil {
		return err
	}
	bundle.Specials = specials
	return nil
}

func (r *PostgresRepository) exportInventory(bundle *domain.BackupBundle) error {
	rows, err := r.DB.Query(`
		SELECT id, name, stock, COALESCE(unit, ''), reorder_level, cost_per_unit, status
		FROM inventory_items
		ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var item domain.BackupInventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Stock, &item.Unit, &item.ReorderLevel,
			&item.CostPerUnit, &item.Status); err != nil {
			continue
		}
		bundle.InventoryItems = append(bundle.InventoryItems, item)
	}

	recipeRows, err := r.DB.Query(`
		SELECT menu_item_name, ingredient_name, quantity_per_unit
		FROM recipe_ingredients
		ORDER BY menu_item_name, ingredient_name`)
	if err != nil {
		return err
	}
	defer recipeRows.Close()

	index := make(map[string]int)
	for recipeRows.Next() {
		var menuItem string
		var ing domain.BackupIngredient
		if err := recipeRows.Scan(&menuItem, &ing.IngredientName, &ing.QuantityPerUnit); err != nil {
			continue
		}
		i, ok := index[menuItem]
		if !ok {
			i = len(bundle.Recipes)
			index[menuItem] = i
			bundle.Recipes = append(bundle.Recipes, domain.BackupRecipe{MenuItemName: menuItem})
		}
		bundle.Recipes[i].Ingredients = append(bundle.Recipes[i].Ingredients, ing)
	}

	txRows, err := r.DB.Query(`
		SELECT id, COALESCE(item_id, 0), item_name, kind, quantity, COALESCE(staff_name, ''), created_at
		FROM inventory_transactions
		ORDER BY id`)
	if err != nil {
		return err
	}
	defer txRows.Close()
	for txRows.Next() {
		var t domain.BackupTransaction
		if err := txRows.Scan(&t.ID, &t.ItemID, &t.ItemName, &t.Kind, &t.Quantity, &t.StaffName, &t.CreatedAt); err != nil {
			continue
		}
		bundle.InventoryTransactions = append(bundle.InventoryTransactions, t)
	}

	return nil
}

func (r *PostgresRepository) exportKitchenOrders(bundle *domain.BackupBundle) error {
	rows, err := r.DB.Query(`
		SELECT id, COALESCE(order_id, 0), table_label, status, items, COALESCE(created_by, ''), created_at
		FROM kitchen_orders
		ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ko domain.BackupKitchenOrder
		var items []byte
		if err := rows.Scan(&ko.ID, &ko.OrderID, &ko.TableLabel, &ko.Status, &items, &ko.CreatedBy, &ko.CreatedAt); err != nil {
			continue
		}
		_ = json.Unmarshal(items, &ko.Items)
		bundle.KitchenOrders = append(bundle.KitchenOrders, ko)
	}
	return nil
}

// Import replaces the persisted collections with the bundle's contents.
// IDs are preserved so a re-imported export reproduces the same entity set.
func (r *PostgresRepository) Import(bundle *domain.BackupBundle) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{
		"order_items", "orders", "kitchen_orders", "specials",
		"recipe_ingredients", "inventory_transactions", "inventory_items",
		"menu_items", "staff",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	if bundle.RestaurantInfo != nil {
		info := bundle.RestaurantInfo
		_, err := tx.Exec(`
			INSERT INTO restaurant_info (id, name, address, city, state, zip, phone, tax_rate, logo)
			VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE
			SET name = $1, address = $2, city = $3, state = $4, zip = $5, phone = $6, tax_rate = $7, logo = $8`,
			info.Name, info.Address, info.City, info.State, info.Zip, info.Phone, info.TaxRate, info.Logo)
		if err != nil {
			return err
		}
	}

	for _, member := range bundle.Staff {
		permissions, _ := json.Marshal(member.Permissions)
		_, err := tx.Exec(`
			INSERT INTO staff (id, name, email, role, permissions, pin_hash, is_active, last_login, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			member.ID, member.Name, member.Email, member.Role, permissions, member.PINHash,
			member.Active, member.LastLogin, member.CreatedAt)
		if err != nil {
			return err
		}
	}

	for _, item := range bundle.MenuItems {
		_, err := tx.Exec(`
			INSERT INTO menu_items (id, name, price, category, is_available, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.Name, item.Price, item.Category, item.Available, item.CreatedAt)
		if err != nil {
			return err
		}
	}

	for _, special := range bundle.Specials {
		_, err := tx.Exec(`
			INSERT INTO specials (product_id, special_price, discount_percentage, notes)
			VALUES ($1, $2, $3, $4)`,
			special.ProductID, special.SpecialPrice, special.DiscountPercentage, special.Notes)
		if err != nil {
			return err
		}
	}

	for _, item := range bundle.InventoryItems {
		_, err := tx.Exec(`
			INSERT INTO inventory_items (id, name, stock, unit, reorder_level, cost_per_unit, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.Name, item.Stock, item.Unit, item.ReorderLevel, item.CostPerUnit, item.Status)
		if err != nil {
			return err
		}
	}

	for _, recipe := range bundle.Recipes {
		for _, ing := range recipe.Ingredients {
			_, err := tx.Exec(`
				INSERT INTO recipe_ingredients (menu_item_name, ingredient_name, quantity_per_unit)
				VALUES ($1, $2, $3)`,
				recipe.MenuItemName, ing.IngredientName, ing.QuantityPerUnit)
			if err != nil {
				return err
			}
		}
	}

	for _, t := range bundle.InventoryTransactions {
		_, err := tx.Exec(`
			INSERT INTO inventory_transactions (id, item_id, item_name, kind, quantity, staff_name, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, t.ItemID, t.ItemName, t.Kind, t.Quantity, t.StaffName, t.CreatedAt)
		if err != nil {
			return err
		}
	}

	for _, order := range bundle.Orders {
		_, err := tx.Exec(`
			INSERT INTO orders (id, order_number, table_number, subtotal, tax, tip, total,
				payment_method, tendered, change, staff_id, staff_name, special_instructions, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			order.ID, order.OrderNumber, order.Table, order.Subtotal, order.Tax, order.Tip,
			order.Total, order.PaymentMethod, order.Tendered, order.Change, order.StaffID,
			order.Staff, order.SpecialInstructions, order.CreatedAt)
		if err != nil {
			return err
		}
		for _, item := range order.Items {
			_, err := tx.Exec(`
				INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price, total_price)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				order.ID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice, item.TotalPrice)
			if err != nil {
				return err
			}
		}
	}

	for _, ko := range bundle.KitchenOrders {
		items, _ := json.Marshal(ko.Items)
		_, err := tx.Exec(`
			INSERT INTO kitchen_orders (id, order_id, table_label, status, items, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			ko.ID, ko.OrderID, ko.TableLabel, ko.Status, items, ko.CreatedBy, ko.CreatedAt)
		if err != nil {
			return err
		}
	}

	if err := resetSequences(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func resetSequences(tx *sql.Tx) error {
	for _, table := range []string{"staff", "menu_items", "inventory_items", "inventory_transactions", "orders", "order_items", "kitchen_orders"} {
		_, err := tx.Exec(
			"SELECT setval(pg_get_serial_sequence($1, 'id'), COALESCE((SELECT MAX(id) FROM " + table + "), 1))",
			table)
		if err != nil {
			return err
		}
	}
	return nil
}
