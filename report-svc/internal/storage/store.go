package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"restaurant-pos/report-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *Store) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS daily_sales (
			day DATE PRIMARY KEY,
			orders INT NOT NULL DEFAULT 0,
			revenue NUMERIC NOT NULL DEFAULT 0,
			tax NUMERIC NOT NULL DEFAULT 0,
			tips NUMERIC NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS item_sales (
			day DATE NOT NULL,
			name TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 0,
			revenue NUMERIC NOT NULL DEFAULT 0,
			PRIMARY KEY (day, name)
		)`,
		`CREATE TABLE IF NOT EXISTS hourly_sales (
			day DATE NOT NULL,
			hour INT NOT NULL,
			orders INT NOT NULL DEFAULT 0,
			revenue NUMERIC NOT NULL DEFAULT 0,
			PRIMARY KEY (day, hour)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// RecordSettlement folds one settled order into the daily, per-item and
// hourly rollups, then bumps the Redis top-item ranking.
func (s *Store) RecordSettlement(event domain.SettledEvent) error {
	day := event.Timestamp.Format("2006-01-02")
	hour := event.Timestamp.Hour()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO daily_sales (day, orders, revenue, tax, tips)
		VALUES ($1, 1, $2, $3, $4)
		ON CONFLICT (day) DO UPDATE
		SET orders = daily_sales.orders + 1,
		    revenue = daily_sales.revenue + $2,
		    tax = daily_sales.tax + $3,
		    tips = daily_sales.tips + $4`,
		day, event.Total, event.Tax, event.Tip)
	if err != nil {
		return err
	}

	for _, item := range event.Items {
		revenue := item.UnitPrice * float64(item.Quantity)
		_, err = tx.Exec(`
			INSERT INTO item_sales (day, name, quantity, revenue)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (day, name) DO UPDATE
			SET quantity = item_sales.quantity + $3,
			    revenue = item_sales.revenue + $4`,
			day, item.Name, item.Quantity, revenue)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT INTO hourly_sales (day, hour, orders, revenue)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (day, hour) DO UPDATE
		SET orders = hourly_sales.orders + 1,
		    revenue = hourly_sales.revenue + $3`,
		day, hour, event.Total)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	dailyKey := fmt.Sprintf("report:top:%s", day)
	for _, item := range event.Items {
		s.rdb.ZIncrBy(s.ctx, dailyKey, float64(item.Quantity), item.Name)
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	return nil
}

func (s *Store) Summary(from, to time.Time) (*domain.SalesSummary, error) {
	var summary domain.SalesSummary
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(orders), 0), COALESCE(SUM(revenue), 0),
			COALESCE(SUM(tax), 0), COALESCE(SUM(tips), 0)
		FROM daily_sales
		WHERE day >= $1 AND day < $2`,
		from.Format("2006-01-02"), to.Format("2006-01-02")).
		Scan(&summary.Orders, &summary.Revenue, &summary.Tax, &summary.Tips)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Store) TopItems(from, to time.Time, limit int) ([]domain.ItemSales, error) {
	rows, err := s.db.Query(`
		SELECT name, SUM(quantity), SUM(revenue)
		FROM item_sales
		WHERE day >= $1 AND day < $2
		GROUP BY name
		ORDER BY SUM(quantity) DESC, name ASC
		LIMIT $3`,
		from.Format("2006-01-02"), to.Format("2006-01-02"), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ItemSales
	for rows.Next() {
		var item domain.ItemSales
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Revenue); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ByCategory joins the per-item rollups against the shared menu table.
// Items no longer on the menu land in Uncategorized.
func (s *Store) ByCategory(from, to time.Time) ([]domain.CategorySales, error) {
	rows, err := s.db.Query(`
		SELECT COALESCE(mi.category, 'Uncategorized'), SUM(isl.quantity), SUM(isl.revenue)
		FROM item_sales isl
		LEFT JOIN menu_items mi ON mi.name = isl.name
		WHERE isl.day >= $1 AND isl.day < $2
		GROUP BY COALESCE(mi.category, 'Uncategorized')
		ORDER BY SUM(isl.revenue) DESC`,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.CategorySales
	for rows.Next() {
		var cat domain.CategorySales
		if err := rows.Scan(&cat.Category, &cat.Quantity, &cat.Revenue); err != nil {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (s *Store) Hourly(day time.Time) ([]domain.HourlySales, error) {
	rows, err := s.db.Query(`
		SELECT hour, orders, revenue
		FROM hourly_sales
		WHERE day = $1
		ORDER BY hour ASC`,
		day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []domain.HourlySales
	for rows.Next() {
		var h domain.HourlySales
		if err := rows.Scan(&h.Hour, &h.Orders, &h.Revenue); err != nil {
			continue
		}
		hours = append(hours, h)
	}
	return hours, nil
}
