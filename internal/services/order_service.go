package services

import (
	"errors"
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to a message broker.
// Implemented by pkg/rabbitmq.Client.
type OrderEventPublisher interface {
	PublishOrderSubmitted(event map[string]interface{}) error
}

// OrderService handles business logic related to order submission and
// history.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	cartRepo  repositories.CartRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService. The publisher may be nil, in
// which case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, cartRepo repositories.CartRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		publisher: publisher,
	}
}

// SubmitOrder snapshots the user's cart into an immutable order, persists
// it, clears the cart and publishes an order.submitted event. The cart is
// cleared so a second submit cannot duplicate the order.
func (s *OrderService) SubmitOrder(username string) (*models.Order, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cart, err := s.cartRepo.GetByID(user.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for user %s: %w", username, err)
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	order := models.NewOrderFromCart(user, cart)
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order for user %s: %w", username, err)
	}

	cart.Items = nil
	cart.Recalculate()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to clear cart for user %s: %w", username, err)
	}

	// Event publication is best-effort; the order is already persisted.
	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":  order.ID,
			"userID":   order.UserID,
			"username": user.Username,
			"total":    order.Total.String(),
			"items":    len(order.Items),
		}
		if err := s.publisher.PublishOrderSubmitted(event); err != nil {
			log.Printf("Warning: Failed to publish order submitted event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrderHistory returns all orders for the user in insertion order. A user
// with no orders gets an empty slice, not an error.
func (s *OrderService) GetOrderHistory(username string) ([]models.Order, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	orders, err := s.orderRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history for user %s: %w", username, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
