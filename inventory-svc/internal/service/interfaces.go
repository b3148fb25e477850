package service

import "restaurant-pos/inventory-svc/internal/domain"

type InventoryRepository interface {
	ListItems() ([]domain.InventoryItem, error)
	GetItem(id int) (*domain.InventoryItem, error)
	CreateItem(item *domain.InventoryItem) error
	UpdateItem(item *domain.InventoryItem) error
	AdjustStock(id int, delta float64, kind, staffName string) (*domain.InventoryItem, error)
	ListTransactions(limit int) ([]domain.Transaction, error)

	ListRecipes() ([]domain.Recipe, error)
	SaveRecipe(recipe *domain.Recipe) error
	DeleteRecipe(menuItemName string) (int64, error)
	RecipeLinesForMenuItem(menuItemID int) ([]domain.RecipeLine, error)
}

type InventoryInterface interface {
	ListItems() ([]domain.InventoryItem, error)
	CreateItem(item *domain.InventoryItem) error
	UpdateItem(item *domain.InventoryItem) error
	ReceiveStock(id int, quantity float64, staffName string) (*domain.InventoryItem, error)
	CheckStock(menuItemID, portions int) ([]domain.Shortage, error)
	Transactions(limit int) ([]domain.Transaction, error)

	ListRecipes() ([]domain.Recipe, error)
	SaveRecipe(recipe *domain.Recipe) error
	DeleteRecipe(menuItemName string) error
}
