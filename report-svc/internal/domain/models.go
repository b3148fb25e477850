package domain

import "time"

// SettledEvent mirrors the message the POS service publishes on
// settlement.
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

type SettledItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type SalesSummary struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Orders  int       `json:"orders"`
	Revenue float64   `json:"revenue"`
	Tax     float64   `json:"tax"`
	Tips    float64   `json:"tips"`
}

func (s SalesSummary) AverageOrder() float64 {
	if s.Orders == 0 {
		return 0
	}
	return s.Revenue / float64(s.Orders)
}

type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type HourlySales struct {
	Hour    int     `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}
