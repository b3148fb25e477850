package service

import (
	"context"

	"restaurant-pos/pos-svc/internal/domain"
)

type OrderRepository interface {
	SettleOrder(order *domain.Order, ticket []domain.TicketItem) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(limit int) ([]domain.Order, error)
}

type MenuRepository interface {
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
	ListSpecials() ([]domain.Special, error)
}

type StaffRepository interface {
	ListStaff() ([]domain.Staff, error)
	ListActiveStaff() ([]domain.Staff, error)
	CreateStaff(staff *domain.Staff, pinHash string) error
	UpdateStaff(staff *domain.Staff) error
	ResetPIN(id int, pinHash string) (int64, error)
	TouchLastLogin(id int) error
	GetRestaurantInfo() (*domain.RestaurantInfo, error)
	UpdateRestaurantInfo(info *domain.RestaurantInfo) error
}

type BackupRepository interface {
	Export() (*domain.BackupBundle, error)
	Import(bundle *domain.BackupBundle) error
}

type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type OrderPublisher interface {
	PublishSettled(ctx context.Context, event domain.SettledEvent) error
}

type SettlementInterface interface {
	Settle(ctx context.Context, req SettleRequest) (*domain.Order, error)
	GetOrder(id int) (*domain.Order, error)
	ListOrders(limit int) ([]domain.Order, error)
}

type AuthInterface interface {
	Login(ctx context.Context, pin string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	ListStaff() ([]domain.Staff, error)
	CreateStaff(staff *domain.Staff, pin string) error
	UpdateStaff(staff *domain.Staff) error
	ResetPIN(id int, pin string) error
	RestaurantInfo() (*domain.RestaurantInfo, error)
	UpdateRestaurantInfo(info *domain.RestaurantInfo) error
}

type MenuInterface interface {
	List() ([]domain.MenuItem, error)
	Get(id int) (*domain.MenuItem, error)
	Create(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(id int) (int64, error)
	Specials() ([]domain.Special, error)
}

type ReceiptInterface interface {
	Render(orderID int) (string, error)
}

type BackupInterface interface {
	Export() (*domain.BackupBundle, error)
	Import(bundle *domain.BackupBundle) error
}
