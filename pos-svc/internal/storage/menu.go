package storage

import "restaurant-pos/pos-svc/internal/domain"

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, COALESCE(category, ''), is_available, created_at
		FROM menu_items
		WHERE is_available = TRUE
		ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Available, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, price, COALESCE(category, ''), is_available, created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Available, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, price, category, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		item.Name, item.Price, item.Category, item.Available).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET name = $1, price = $2, category = $3, is_available = $4
		WHERE id = $5
		RETURNING created_at`,
		item.Name, item.Price, item.Category, item.Available, item.ID).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListSpecials() ([]domain.Special, error) {
	rows, err := r.DB.Query(`
		SELECT product_id, special_price, discount_percentage, COALESCE(notes, '')
		FROM specials
		ORDER BY product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specials []domain.Special
	for rows.Next() {
		var special domain.Special
		if err := rows.Scan(&special.ProductID, &special.SpecialPrice, &special.DiscountPercentage, &special.Notes); err != nil {
			continue
		}
		specials = append(specials, special)
	}
	return specials, nil
}
