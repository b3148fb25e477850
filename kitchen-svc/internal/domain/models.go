package domain

import "time"

type Status string

const (
	StatusNew       Status = "new"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
)

// Next returns the only status an order may move to. Tickets advance one
// step at a time and never move backwards.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusNew:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusServed, true
	default:
		return "", false
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusServed:
		return true
	}
	return false
}

type TicketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type KitchenOrder struct {
	ID         int          `json:"id"`
	OrderID    int          `json:"order_id"`
	TableLabel string       `json:"table_label"`
	Status     Status       `json:"status"`
	Items      []TicketItem `json:"items"`
	CreatedBy  string       `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
	ServedAt   *time.Time   `json:"served_at,omitempty"`
}

// BadgeCounts drives the status badges on the kitchen display.
type BadgeCounts struct {
	New       int `json:"new"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
}

func (b BadgeCounts) Active() int {
	return b.New + b.Preparing + b.Ready
}
