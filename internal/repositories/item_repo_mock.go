package repositories

import (
	"fmt"
	"sort"
	"sync"

	"storefront/internal/models"
)

// MockItemRepository is an in-memory implementation of ItemRepository.
type MockItemRepository struct {
	items  map[uint]models.Item
	nextID uint
	mu     sync.RWMutex
}

// NewMockItemRepository creates a new instance of MockItemRepository.
func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		items:  make(map[uint]models.Item),
		nextID: 1,
	}
}

// GetAll returns all items ordered by ID.
func (r *MockItemRepository) GetAll() ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	sort.Slice(itemList, func(i, j int) bool { return itemList[i].ID < itemList[j].ID })
	return itemList, nil
}

// GetByID returns an item by its ID.
func (r *MockItemRepository) GetByID(id uint) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item with ID %d: %w", id, ErrNotFound)
	}
	return &item, nil
}

// GetByName returns all items with the given name.
func (r *MockItemRepository) GetByName(name string) ([]models.Item, error) {
	all, _ := r.GetAll()
	var matched []models.Item
	for _, item := range all {
		if item.Name == name {
			matched = append(matched, item)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("items with name %s: %w", name, ErrNotFound)
	}
	return matched, nil
}

// Create adds a new item, assigning a sequential ID if none is set.
func (r *MockItemRepository) Create(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
	}
	if item.ID >= r.nextID {
		r.nextID = item.ID + 1
	}
	r.items[item.ID] = *item
	return nil
}
