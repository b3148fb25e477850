package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"restaurant-pos/kitchen-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the kitchen_orders table when the POS service has
// not run yet. Both services share the table.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS kitchen_orders (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT,
			table_label TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new',
			items JSONB NOT NULL DEFAULT '[]',
			created_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			served_at TIMESTAMPTZ
		)`)
	return err
}

func (r *PostgresRepository) ListOrders(includeServed bool) ([]domain.KitchenOrder, error) {
	query := `
		SELECT id, COALESCE(order_id, 0), COALESCE(table_label, ''), status, items,
			COALESCE(created_by, ''), created_at, served_at
		FROM kitchen_orders`
	if !includeServed {
		query += ` WHERE status != 'served'`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.KitchenOrder
	for rows.Next() {
		order, err := scanKitchenOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(id int) (*domain.KitchenOrder, error) {
	row := r.DB.QueryRow(`
		SELECT id, COALESCE(order_id, 0), COALESCE(table_label, ''), status, items,
			COALESCE(created_by, ''), created_at, served_at
		FROM kitchen_orders
		WHERE id = $1`, id)
	return scanKitchenOrder(row)
}

func (r *PostgresRepository) UpdateStatus(id int, status domain.Status, servedAt *time.Time) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE kitchen_orders SET status = $1, served_at = $2 WHERE id = $3`,
		string(status), servedAt, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ClearCompleted() (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM kitchen_orders WHERE status = 'served'`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CountByStatus() (domain.BadgeCounts, error) {
	var counts domain.BadgeCounts
	err := r.DB.QueryRow(`
		SELECT
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'preparing'),
			COUNT(*) FILTER (WHERE status = 'ready')
		FROM kitchen_orders`).
		Scan(&counts.New, &counts.Preparing, &counts.Ready)
	return counts, err
}

func (r *PostgresRepository) ListStale(status domain.Status, olderThan time.Time) ([]int, error) {
	rows, err := r.DB.Query(`
		SELECT id FROM kitchen_orders WHERE status = $1 AND created_at < $2`,
		string(status), olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanKitchenOrder(row rowScanner) (*domain.KitchenOrder, error) {
	var order domain.KitchenOrder
	var itemsJSON []byte
	var status string
	err := row.Scan(&order.ID, &order.OrderID, &order.TableLabel, &status, &itemsJSON,
		&order.CreatedBy, &order.CreatedAt, &order.ServedAt)
	if err != nil {
		return nil, err
	}
	order.Status = domain.Status(status)
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, err
		}
	}
	return &order, nil
}
