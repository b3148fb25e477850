package storage

import (
	"database/sql"
	"encoding/json"

	"restaurant-pos/pos-svc/internal/domain"
)

func (r *PostgresRepository) ListStaff() ([]domain.Staff, error) {
	return r.queryStaff(`
		SELECT id, name, COALESCE(email, ''), role, permissions, pin_hash, is_active, last_login, created_at
		FROM staff
		ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListActiveStaff() ([]domain.Staff, error) {
	return r.queryStaff(`
		SELECT id, name, COALESCE(email, ''), role, permissions, pin_hash, is_active, last_login, created_at
		FROM staff
		WHERE is_active = TRUE
		ORDER BY created_at DESC`)
}

func (r *PostgresRepository) queryStaff(query string) ([]domain.Staff, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		var member domain.Staff
		var permissions []byte
		if err := rows.Scan(&member.ID, &member.Name, &member.Email, &member.Role,
			&permissions, &member.PINHash, &member.Active, &member.LastLogin, &member.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal(permissions, &member.Permissions); err != nil {
			member.Permissions = map[string]bool{}
		}
		staff = append(staff, member)
	}
	return staff, nil
}

func (r *PostgresRepository) CreateStaff(staff *domain.Staff, pinHash string) error {
	permissions, _ := json.Marshal(staff.Permissions)
	return r.DB.QueryRow(`
		INSERT INTO staff (name, email, role, permissions, pin_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		staff.Name, staff.Email, staff.Role, permissions, pinHash, staff.Active).
		Scan(&staff.ID, &staff.CreatedAt)
}

func (r *PostgresRepository) UpdateStaff(staff *domain.Staff) error {
	permissions, _ := json.Marshal(staff.Permissions)
	_, err := r.DB.Exec(`
		UPDATE staff
		SET name = $1, email = $2, role = $3, permissions = $4, is_active = $5
		WHERE id = $6`,
		staff.Name, staff.Email, staff.Role, permissions, staff.Active, staff.ID)
	return err
}

func (r *PostgresRepository) ResetPIN(id int, pinHash string) (int64, error) {
	result, err := r.DB.Exec("UPDATE staff SET pin_hash = $1 WHERE id = $2", pinHash, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) TouchLastLogin(id int) error {
	_, err := r.DB.Exec("UPDATE staff SET last_login = NOW() WHERE id = $1", id)
	return err
}

func (r *PostgresRepository) GetRestaurantInfo() (*domain.RestaurantInfo, error) {
	var info domain.RestaurantInfo
	err := r.DB.QueryRow(`
		SELECT name, COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''),
			COALESCE(zip, ''), COALESCE(phone, ''), tax_rate, COALESCE(logo, '')
		FROM restaurant_info
		WHERE id = 1`).
		Scan(&info.Name, &info.Address, &info.City, &info.State, &info.Zip, &info.Phone,
			&info.TaxRate, &info.Logo)
	if err == sql.ErrNoRows {
		return &domain.RestaurantInfo{TaxRate: 8.5}, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *PostgresRepository) UpdateRestaurantInfo(info *domain.RestaurantInfo) error {
	_, err := r.DB.Exec(`
		INSERT INTO restaurant_info (id, name, address, city, state, zip, phone, tax_rate, logo)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = $1, address = $2, city = $3, state = $4, zip = $5, phone = $6, tax_rate = $7, logo = $8`,
		info.Name, info.Address, info.City, info.State, info.Zip, info.Phone, info.TaxRate, info.Logo)
	return err
}
