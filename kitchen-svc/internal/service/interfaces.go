package service

import (
	"context"
	"time"

	"restaurant-pos/kitchen-svc/internal/domain"
)

type KitchenRepository interface {
	ListOrders(includeServed bool) ([]domain.KitchenOrder, error)
	GetOrder(id int) (*domain.KitchenOrder, error)
	UpdateStatus(id int, status domain.Status, servedAt *time.Time) (int64, error)
	ClearCompleted() (int64, error)
	CountByStatus() (domain.BadgeCounts, error)
	ListStale(status domain.Status, olderThan time.Time) ([]int, error)
}

type BadgeCache interface {
	SetCounts(ctx context.Context, counts domain.BadgeCounts) error
	GetCounts(ctx context.Context) (*domain.BadgeCounts, error)
}

type KitchenInterface interface {
	ListOrders(includeServed bool) ([]domain.KitchenOrder, error)
	GetOrder(id int) (*domain.KitchenOrder, error)
	Advance(ctx context.Context, id int, target domain.Status) (*domain.KitchenOrder, error)
	ClearCompleted(ctx context.Context) (int64, error)
	Badges(ctx context.Context) (domain.BadgeCounts, error)
	RenderTicket(id int) (string, error)
}
