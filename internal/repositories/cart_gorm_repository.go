package repositories

import (
	"fmt"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository. Cart
// contents are stored one row per item unit in cart_entries; entry primary
// key order is the item sequence order.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create persists a new, empty cart.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if err := r.db.Omit("Entries").Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// GetByID loads a cart and hydrates its item sequence from the entry rows.
func (r *GORMCartRepository) GetByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart by ID %d: %w", id, err)
	}

	var entries []models.CartEntry
	if err := r.db.Preload("Item").Order("id").Find(&entries, "cart_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load entries for cart %d: %w", id, err)
	}
	cart.Entries = entries
	cart.Items = make([]models.Item, 0, len(entries))
	for _, entry := range entries {
		cart.Items = append(cart.Items, entry.Item)
	}
	return &cart, nil
}

// Save replaces the persisted entries with the cart's current item sequence
// and stores the recomputed total.
func (r *GORMCartRepository) Save(cart *models.Cart) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartEntry{}, "cart_id = ?", cart.ID).Error; err != nil {
			return fmt.Errorf("failed to clear entries for cart %d: %w", cart.ID, err)
		}
		if len(cart.Items) > 0 {
			entries := make([]models.CartEntry, 0, len(cart.Items))
			for _, item := range cart.Items {
				entries = append(entries, models.CartEntry{CartID: cart.ID, ItemID: item.ID})
			}
			if err := tx.Create(&entries).Error; err != nil {
				return fmt.Errorf("failed to save entries for cart %d: %w", cart.ID, err)
			}
		}
		if err := tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("total", cart.Total).Error; err != nil {
			return fmt.Errorf("failed to save total for cart %d: %w", cart.ID, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
