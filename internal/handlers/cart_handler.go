package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart mutation.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All cart
// routes require a valid bearer token.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart", auth)
	cartRoutes.Post("/addToCart", h.HandleAddToCart)
	cartRoutes.Post("/removeFromCart", h.HandleRemoveFromCart)
}

// ModifyCartRequest represents the request body for cart mutation. Quantity
// below 1 is rejected rather than silently ignored.
type ModifyCartRequest struct {
	Username string `json:"username" validate:"required"`
	ItemID   uint   `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// HandleAddToCart appends item units to the user's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	req, apiErr := h.parseRequest(c)
	if apiErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*apiErr)
	}

	cart, err := h.service.AddToCart(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return h.writeError(c, "Adding to cart", req.Username, err)
	}
	return c.JSON(cart)
}

// HandleRemoveFromCart removes item units from the user's cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	req, apiErr := h.parseRequest(c)
	if apiErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*apiErr)
	}

	cart, err := h.service.RemoveFromCart(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return h.writeError(c, "Remove from cart", req.Username, err)
	}
	return c.JSON(cart)
}

// parseRequest decodes and validates the shared cart mutation payload.
func (h *CartHandler) parseRequest(c *fiber.Ctx) (*ModifyCartRequest, *models.APIError) {
	var req ModifyCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		apiErr := models.NewAPIError("Invalid request body")
		return nil, &apiErr
	}
	if err := h.validate.Struct(req); err != nil {
		apiErr := toValidationError(err)
		return nil, &apiErr
	}
	return &req, nil
}

// writeError translates service errors into the uniform error payload.
func (h *CartHandler) writeError(c *fiber.Ctx, op, username string, err error) error {
	log.Printf("%s error for user %s: %v", op, username, err)
	if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrItemNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not update cart"))
}
