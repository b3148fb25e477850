package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"restaurant-pos/inventory-svc/internal/domain"
)

var (
	ErrItemNotSelected  = errors.New("no inventory item selected")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrEmptyRecipe      = errors.New("recipe needs at least one ingredient")
)

type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) ListItems() ([]domain.InventoryItem, error) {
	return s.repo.ListItems()
}

func (s *InventoryService) CreateItem(item *domain.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrItemNotSelected
	}
	item.Status = domain.StatusFor(item.Stock, item.ReorderLevel)
	return s.repo.CreateItem(item)
}

func (s *InventoryService) UpdateItem(item *domain.InventoryItem) error {
	item.Status = domain.StatusFor(item.Stock, item.ReorderLevel)
	return s.repo.UpdateItem(item)
}

// ReceiveStock adds a delivery to an item and logs the movement.
func (s *InventoryService) ReceiveStock(id int, quantity float64, staffName string) (*domain.InventoryItem, error) {
	if id <= 0 {
		return nil, ErrItemNotSelected
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repo.AdjustStock(id, quantity, "receive", staffName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to receive stock: %w", err)
	}
	return item, nil
}

// CheckStock reports which recipe ingredients cannot cover the requested
// portions of a menu item.
func (s *InventoryService) CheckStock(menuItemID, portions int) ([]domain.Shortage, error) {
	if portions <= 0 {
		portions = 1
	}

	lines, err := s.repo.RecipeLinesForMenuItem(menuItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}

	return domain.Shortages(lines, portions), nil
}

func (s *InventoryService) Transactions(limit int) ([]domain.Transaction, error) {
	return s.repo.ListTransactions(limit)
}

func (s *InventoryService) ListRecipes() ([]domain.Recipe, error) {
	return s.repo.ListRecipes()
}

func (s *InventoryService) SaveRecipe(recipe *domain.Recipe) error {
	if strings.TrimSpace(recipe.MenuItemName) == "" {
		return ErrMenuItemNotFound
	}
	if len(recipe.Ingredients) == 0 {
		return ErrEmptyRecipe
	}
	for _, ing := range recipe.Ingredients {
		if ing.QuantityPerUnit <= 0 {
			return ErrInvalidQuantity
		}
	}
	return s.repo.SaveRecipe(recipe)
}

func (s *InventoryService) DeleteRecipe(menuItemName string) error {
	affected, err := s.repo.DeleteRecipe(menuItemName)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
