package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for cart mutation.
type CartService struct {
	userRepo repositories.UserRepository
	itemRepo repositories.ItemRepository
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository, cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		cartRepo: cartRepo,
	}
}

// AddToCart appends quantity units of the item to the user's cart,
// recomputes the total and persists the result.
func (s *CartService) AddToCart(username string, itemID uint, quantity int) (*models.Cart, error) {
	user, item, cart, err := s.resolve(username, itemID)
	if err != nil {
		return nil, err
	}

	for i := 0; i < quantity; i++ {
		cart.AddItem(*item)
	}
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", user.Username, err)
	}
	return cart, nil
}

// RemoveFromCart removes up to quantity occurrences of the item from the
// user's cart. Removing more than present floors at zero items; the total
// never goes negative.
func (s *CartService) RemoveFromCart(username string, itemID uint, quantity int) (*models.Cart, error) {
	user, item, cart, err := s.resolve(username, itemID)
	if err != nil {
		return nil, err
	}

	for i := 0; i < quantity; i++ {
		cart.RemoveItem(*item)
	}
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for user %s: %w", user.Username, err)
	}
	return cart, nil
}

// resolve looks up the user, the item and the user's cart, translating
// missing records into the client-facing not-found errors.
func (s *CartService) resolve(username string, itemID uint) (*models.User, *models.Item, *models.Cart, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, nil, ErrUserNotFound
		}
		return nil, nil, nil, err
	}

	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, nil, ErrItemNotFound
		}
		return nil, nil, nil, err
	}

	cart, err := s.cartRepo.GetByID(user.CartID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load cart for user %s: %w", username, err)
	}
	return user, item, cart, nil
}
