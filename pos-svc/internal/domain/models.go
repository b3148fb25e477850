package domain

import (
	"math"
	"time"
)

type Staff struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions"`
	Active      bool            `json:"active"`
	PINHash     string          `json:"-"`
	LastLogin   *time.Time      `json:"last_login,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Session struct {
	Token       string          `json:"token"`
	StaffID     int             `json:"staff_id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions"`
}

type RestaurantInfo struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Zip     string  `json:"zip"`
	Phone   string  `json:"phone"`
	TaxRate float64 `json:"tax_rate"`
	Logo    string  `json:"logo,omitempty"`
}

type MenuItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

type Special struct {
	ProductID          int      `json:"product_id"`
	SpecialPrice       *float64 `json:"special_price,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// CartLine is one menu item entry on an unsettled check. The price is the
// price at the moment the line was added, not a live reference.
type CartLine struct {
	MenuItemID int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentGift = "gift"
)

type Payment struct {
	Method         string  `json:"method"`
	AmountTendered float64 `json:"amount_tendered,omitempty"`
	CardNumber     string  `json:"card_number,omitempty"`
	Expiry         string  `json:"expiry,omitempty"`
	CVV            string  `json:"cvv,omitempty"`
	GiftCardNumber string  `json:"gift_card_number,omitempty"`
}

type OrderItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Order is the immutable settlement record. Totals are rounded to cents
// when the record is built; intermediate math keeps full precision.
type Order struct {
	ID                  int         `json:"id"`
	OrderNumber         string      `json:"order_number"`
	Table               string      `json:"table"`
	Items               []OrderItem `json:"items"`
	Subtotal            float64     `json:"subtotal"`
	Tax                 float64     `json:"tax"`
	Tip                 float64     `json:"tip"`
	Total               float64     `json:"total"`
	PaymentMethod       string      `json:"payment_method"`
	Tendered            *float64    `json:"tendered,omitempty"`
	Change              *float64    `json:"change,omitempty"`
	Staff               string      `json:"staff"`
	StaffID             int         `json:"staff_id"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}

// TicketItem is a grouped line on the kitchen ticket.
type TicketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SettledItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type SettledEvent struct {
	Type        string        `json:"type"`
	OrderID     int           `json:"order_id"`
	OrderNumber string        `json:"order_number"`
	Table       string        `json:"table"`
	Staff       string        `json:"staff"`
	Subtotal    float64       `json:"subtotal"`
	Tax         float64       `json:"tax"`
	Tip         float64       `json:"tip"`
	Total       float64       `json:"total"`
	Items       []SettledItem `json:"items"`
	Timestamp   time.Time     `json:"timestamp"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TableLabel formats the raw table value for tickets and receipts.
func TableLabel(table string) string {
	switch table {
	case "takeout":
		return "Takeout"
	case "delivery":
		return "Delivery"
	default:
		return "Table " + table
	}
}

// GroupTicketItems collapses repeated cart lines into one ticket line per
// item name, preserving first-seen order.
func GroupTicketItems(items []OrderItem) []TicketItem {
	index := make(map[string]int)
	var grouped []TicketItem
	for _, item := range items {
		if i, ok := index[item.Name]; ok {
			grouped[i].Quantity += item.Quantity
			continue
		}
		index[item.Name] = len(grouped)
		grouped = append(grouped, TicketItem{Name: item.Name, Quantity: item.Quantity})
	}
	return grouped
}
