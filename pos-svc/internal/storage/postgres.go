package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"restaurant-pos/pos-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS staff (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT,
			role TEXT NOT NULL,
			permissions JSONB NOT NULL DEFAULT '{}',
			pin_hash TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_login TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_info (
			id INT PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			address TEXT,
			city TEXT,
			state TEXT,
			zip TEXT,
			phone TEXT,
			tax_rate NUMERIC NOT NULL DEFAULT 8.5,
			logo TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			price NUMERIC NOT NULL CHECK (price >= 0),
			category TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS specials (
			product_id INT PRIMARY KEY REFERENCES menu_items(id) ON DELETE CASCADE,
			special_price NUMERIC,
			discount_percentage NUMERIC,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			order_number TEXT,
			table_number TEXT,
			subtotal NUMERIC NOT NULL,
			tax NUMERIC NOT NULL,
			tip NUMERIC NOT NULL DEFAULT 0,
			total NUMERIC NOT NULL,
			payment_method TEXT NOT NULL,
			tendered NUMERIC,
			change NUMERIC,
			staff_id INT,
			staff_name TEXT,
			special_instructions TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INT,
			name TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price NUMERIC NOT NULL,
			total_price NUMERIC NOT NULL
		)`,
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
		`CREATE TABLE IF NOT EXISTS kitchen_orders (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT,
			table_label TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new',
			items JSONB NOT NULL DEFAULT '[]',
			created_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			served_at TIMESTAMPTZ
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

const salesHistoryLimit = 500

// SettleOrder commits the whole settlement in one transaction: the order
// record and its items, the recipe-driven inventory depletion, the kitchen
// order and the sales-history trim. Nothing is written if any step fails.
func (r *PostgresRepository) SettleOrder(order *domain.Order, ticket []domain.TicketItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (table_number, subtotal, tax, tip, total, payment_method,
			tendered, change, staff_id, staff_name, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		order.Table, order.Subtotal, order.Tax, order.Tip, order.Total, order.PaymentMethod,
		order.Tendered, order.Change, order.StaffID, order.Staff, order.SpecialInstructions).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	order.OrderNumber = fmt.Sprintf("ORD-%s-%04d", order.CreatedAt.Format("20060102"), order.ID)
	if _, err := tx.Exec("UPDATE orders SET order_number = $1 WHERE id = $2", order.OrderNumber, order.ID); err != nil {
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

	if err := depleteInventory(tx, ticket, order.Staff); err != nil {
		return err
	}

	itemsJSON, _ := json.Marshal(ticket)
	_, err = tx.Exec(`
		INSERT INTO kitchen_orders (order_id, table_label, status, items, created_by)
		VALUES ($1, $2, 'new', $3, $4)`,
		order.ID, domain.TableLabel(order.Table), itemsJSON, order.Staff)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		DELETE FROM orders
		WHERE id NOT IN (SELECT id FROM orders ORDER BY id DESC LIMIT $1)`, salesHistoryLimit)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// depleteInventory reduces stock per the recipe table. Menu items without a
// recipe and ingredients without a tracked inventory row are skipped.
func depleteInventory(tx *sql.Tx, ticket []domain.TicketItem, staffName string) error {
	for _, line := range ticket {
		rows, err := tx.Query(`
			SELECT ingredient_name, quantity_per_unit
			FROM recipe_ingredients
			WHERE menu_item_name = $1`, line.Name)
		if err != nil {
			return err
		}

		type ingredient struct {
			name    string
			perUnit float64
		}
		var ingredients []ingredient
		for rows.Next() {
			var ing ingredient
			if err := rows.Scan(&ing.name, &ing.perUnit); err != nil {
				rows.Close()
				return err
			}
			ingredients = append(ingredients, ing)
		}
		rows.Close()

		for _, ing := range ingredients {
			used := ing.perUnit * float64(line.Quantity)

			result, err := tx.Exec(`
				UPDATE inventory_items
				SET stock = GREATEST(stock - $1, 0),
				    status = CASE
				        WHEN GREATEST(stock - $1, 0) <= 0 THEN 'out'
				        WHEN GREATEST(stock - $1, 0) <= reorder_level THEN 'low'
				        ELSE 'ok'
				    END
				WHERE name = $2`, used, ing.name)
			if err != nil {
				return err
			}

			affected, _ := result.RowsAffected()
			if affected == 0 {
				continue
			}

			_, err = tx.Exec(`
				INSERT INTO inventory_transactions (item_id, item_name, kind, quantity, staff_name)
				SELECT id, name, 'order', $1, $2 FROM inventory_items WHERE name = $3`,
				-used, staffName, ing.name)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(order_number, ''), COALESCE(table_number, ''), subtotal, tax, tip, total,
			payment_method, tendered, change, COALESCE(staff_id, 0), COALESCE(staff_name, ''),
			COALESCE(special_instructions, ''), created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.OrderNumber, &order.Table, &order.Subtotal, &order.Tax, &order.Tip,
			&order.Total, &order.PaymentMethod, &order.Tendered, &order.Change, &order.StaffID,
			&order.Staff, &order.SpecialInstructions, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) ListOrders(limit int) ([]domain.Order, error) {
	if limit <= 0 || limit > salesHistoryLimit {
		limit = salesHistoryLimit
	}

	rows, err := r.DB.Query(`
		SELECT id, COALESCE(order_number, ''), COALESCE(table_number, ''), subtotal, tax, tip, total,
			payment_method, tendered, change, COALESCE(staff_id, 0), COALESCE(staff_name, ''),
			COALESCE(special_instructions, ''), created_at
		FROM orders
		ORDER BY id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.Table, &order.Subtotal, &order.Tax,
			&order.Tip, &order.Total, &order.PaymentMethod, &order.Tendered, &order.Change,
			&order.StaffID, &order.Staff, &order.SpecialInstructions, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *PostgresRepository) orderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT menu_item_id, name, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
