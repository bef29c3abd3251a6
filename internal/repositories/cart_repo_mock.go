package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts  map[uint]models.Cart
	nextID uint
	mu     sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts:  make(map[uint]models.Cart),
		nextID: 1,
	}
}

// Create adds a new cart, assigning a sequential ID.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == 0 {
		cart.ID = r.nextID
		r.nextID++
	}
	r.carts[cart.ID] = copyCart(*cart)
	return nil
}

// GetByID returns the cart with the given ID.
func (r *MockCartRepository) GetByID(id uint) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, fmt.Errorf("cart with ID %d: %w", id, ErrNotFound)
	}
	c := copyCart(cart)
	return &c, nil
}

// Save overwrites the stored cart contents. Last write wins.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.ID]; !ok {
		return fmt.Errorf("cart with ID %d: %w", cart.ID, ErrNotFound)
	}
	r.carts[cart.ID] = copyCart(*cart)
	return nil
}

// copyCart deep-copies the item slice so callers cannot mutate stored state.
func copyCart(cart models.Cart) models.Cart {
	items := make([]models.Item, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}
