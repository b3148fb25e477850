package service

import "restaurant-pos/pos-svc/internal/domain"

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems()
}

func (s *MenuService) Get(id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(id)
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	return s.repo.CreateMenuItem(item)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	return s.repo.UpdateMenuItem(item)
}

func (s *MenuService) Delete(id int) (int64, error) {
	return s.repo.DeleteMenuItem(id)
}

func (s *MenuService) Specials() ([]domain.Special, error) {
	return s.repo.ListSpecials()
}
