package storage

import (
	"encoding/json"
	"log"

	"golang.org/x/crypto/bcrypt"
)

type seedStaff struct {
	name        string
	email       string
	role        string
	pin         string
	permissions map[string]bool
}

type seedProduct struct {
	name     string
	price    float64
	category string
}

// SeedDefaults installs the demo staff, restaurant info and starter menu on
// an empty database. Existing rows are never touched.
func (r *PostgresRepository) SeedDefaults() error {
	var staffCount int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM staff").Scan(&staffCount); err != nil {
		return err
	}
	if staffCount == 0 {
		all := map[string]bool{"pos": true, "inventory": true, "reports": true, "staff": true, "settings": true}
		manager := map[string]bool{"pos": true, "inventory": true, "reports": true, "staff": false, "settings": false}
		posOnly := map[string]bool{"pos": true, "inventory": false, "reports": false, "staff": false, "settings": false}

		demo := []seedStaff{
			{"Admin User", "admin@restaurant.com", "admin", "1234", all},
			{"John Manager", "john@restaurant.com", "manager", "1111", manager},
			{"Sarah Staff", "sarah@restaurant.com", "staff", "2222", posOnly},
			{"Mike Cook", "mike@restaurant.com", "staff", "3333", posOnly},
		}

		for _, member := range demo {
			hash, err := bcrypt.GenerateFromPassword([]byte(member.pin), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			permissions, _ := json.Marshal(member.permissions)
			_, err = r.DB.Exec(`
				INSERT INTO staff (name, email, role, permissions, pin_hash)
				VALUES ($1, $2, $3, $4, $5)`,
				member.name, member.email, member.role, permissions, string(hash))
			if err != nil {
				return err
			}
		}
		log.Println("Seeded demo staff accounts")
	}

	_, err := r.DB.Exec(`
		INSERT INTO restaurant_info (id, name, address, city, state, zip, phone, tax_rate)
		VALUES (1, 'Demo Restaurant', '123 Main Street', 'Springfield', 'IL', '62701', '(555) 123-4567', 8.5)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return err
	}

	var menuCount int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&menuCount); err != nil {
		return err
	}
	if menuCount == 0 {
		products := []seedProduct{
			{"Classic Burger", 12.99, "Mains"},
			{"Cheeseburger", 13.99, "Mains"},
			{"French Fries", 4.99, "Sides"},
			{"Chicken Wings", 10.99, "Appetizers"},
			{"Soda", 1.99, "Drinks"},
			{"Ice Cream", 3.99, "Desserts"},
			{"Caesar Salad", 8.99, "Appetizers"},
			{"Steak", 24.99, "Mains"},
		}
		for _, product := range products {
			_, err := r.DB.Exec(`
				INSERT INTO menu_items (name, price, category)
				VALUES ($1, $2, $3)`,
				product.name, product.price, product.category)
			if err != nil {
				return err
			}
		}
		log.Println("Seeded starter menu")
	}

	return nil
}
