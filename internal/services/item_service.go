package services

import (
	"errors"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ItemService handles business logic related to the read-only item catalog.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// GetAllItems retrieves the full catalog.
func (s *ItemService) GetAllItems() ([]models.Item, error) {
	return s.repo.GetAll()
}

// GetItemByID retrieves a single item by its ID.
func (s *ItemService) GetItemByID(id uint) (*models.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// GetItemsByName retrieves all items sharing the given name.
func (s *ItemService) GetItemsByName(name string) ([]models.Item, error) {
	items, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return items, nil
}
