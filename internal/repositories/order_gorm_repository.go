package repositories

import (
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository. Like
// carts, order contents are stored one row per item unit in order_lines.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists a new order snapshot and its lines.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) > 0 {
			lines := make([]models.OrderLine, 0, len(order.Items))
			for _, item := range order.Items {
				lines = append(lines, models.OrderLine{OrderID: order.ID, ItemID: item.ID})
			}
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByUserID returns all orders for the given user in insertion order.
func (r *GORMOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at").Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	for i := range orders {
		var lines []models.OrderLine
		if err := r.db.Preload("Item").Order("id").Find(&lines, "order_id = ?", orders[i].ID).Error; err != nil {
			return nil, fmt.Errorf("failed to load lines for order %s: %w", orders[i].ID, err)
		}
		orders[i].Lines = lines
		orders[i].Items = make([]models.Item, 0, len(lines))
		for _, line := range lines {
			orders[i].Items = append(orders[i].Items, line.Item)
		}
	}
	return orders, nil
}
