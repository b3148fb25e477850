package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/kitchen-svc/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("kitchen order not found")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("status can only advance one step forward")
)

type KitchenService struct {
	repo   KitchenRepository
	badges BadgeCache
}

func NewKitchenService(repo KitchenRepository, badges BadgeCache) *KitchenService {
	return &KitchenService{repo: repo, badges: badges}
}

func (s *KitchenService) ListOrders(includeServed bool) ([]domain.KitchenOrder, error) {
	return s.repo.ListOrders(includeServed)
}

func (s *KitchenService) GetOrder(id int) (*domain.KitchenOrder, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Advance moves a ticket to the target status. Only the single next step
// is allowed, so a stale display cannot skip preparation or resurrect a
// served ticket.
func (s *KitchenService) Advance(ctx context.Context, id int, target domain.Status) (*domain.KitchenOrder, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	next, ok := order.Status.Next()
	if !ok || next != target {
		return nil, ErrInvalidTransition
	}

	var servedAt *time.Time
	if target == domain.StatusServed {
		now := time.Now()
		servedAt = &now
	}

	affected, err := s.repo.UpdateStatus(id, target, servedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	order.Status = target
	order.ServedAt = servedAt

	s.refreshBadges(ctx)
	return order, nil
}

func (s *KitchenService) ClearCompleted(ctx context.Context) (int64, error) {
	cleared, err := s.repo.ClearCompleted()
	if err != nil {
		return 0, err
	}
	s.refreshBadges(ctx)
	return cleared, nil
}

// Badges serves the cached counts when they exist and falls back to the
// database otherwise.
func (s *KitchenService) Badges(ctx context.Context) (domain.BadgeCounts, error) {
	if cached, err := s.badges.GetCounts(ctx); err == nil && cached != nil {
		return *cached, nil
	}

	counts, err := s.repo.CountByStatus()
	if err != nil {
		return domain.BadgeCounts{}, err
	}
	_ = s.badges.SetCounts(ctx, counts)
	return counts, nil
}

func (s *KitchenService) RenderTicket(id int) (string, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return "", ErrOrderNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#%d  %s\n", order.OrderID, order.TableLabel)
	fmt.Fprintf(&b, "%s\n", order.CreatedAt.Format("15:04"))
	b.WriteString("----------------\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s\n", item.Quantity, item.Name)
	}
	return b.String(), nil
}

func (s *KitchenService) refreshBadges(ctx context.Context) {
	counts, err := s.repo.CountByStatus()
	if err != nil {
		return
	}
	_ = s.badges.SetCounts(ctx, counts)
}

// Janitor auto-serves tickets stuck in ready so a busy shift does not
// leave the display full of picked-up orders.
type Janitor struct {
	repo     KitchenRepository
	badges   BadgeCache
	Interval time.Duration
	MaxAge   time.Duration
}

func NewJanitor(repo KitchenRepository, badges BadgeCache, interval, maxAge time.Duration) *Janitor {
	return &Janitor{repo: repo, badges: badges, Interval: interval, MaxAge: maxAge}
}

func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.MaxAge)
	stale, err := j.repo.ListStale(domain.StatusReady, cutoff)
	if err != nil {
		return
	}
	for _, id := range stale {
		now := time.Now()
		_, _ = j.repo.UpdateStatus(id, domain.StatusServed, &now)
	}
	if len(stale) > 0 {
		if counts, err := j.repo.CountByStatus(); err == nil {
			_ = j.badges.SetCounts(ctx, counts)
		}
	}
}
