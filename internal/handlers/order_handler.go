package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order submission and history.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All order
// routes require a valid bearer token.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	orderRoutes := router.Group("/order", auth)
	orderRoutes.Post("/submit/:username", h.HandleSubmitOrder)
	orderRoutes.Get("/history/:username", h.HandleGetOrderHistory)
}

// HandleSubmitOrder snapshots the user's cart into a new order.
func (h *OrderHandler) HandleSubmitOrder(c *fiber.Ctx) error {
	username := c.Params("username")
	order, err := h.service.SubmitOrder(username)
	if err != nil {
		log.Printf("Error submitting order for user %s: %v", username, err)
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrCartEmpty) {
			return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not submit order"))
	}
	return c.JSON(order)
}

// HandleGetOrderHistory returns all orders for the user, oldest first.
func (h *OrderHandler) HandleGetOrderHistory(c *fiber.Ctx) error {
	username := c.Params("username")
	orders, err := h.service.GetOrderHistory(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(err.Error()))
		}
		log.Printf("Error getting order history for user %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not retrieve order history"))
	}
	return c.JSON(orders)
}
