package handlers

import (
	"errors"
	"log"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for the read-only item catalog.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// RegisterRoutes registers the item routes with the Fiber app. All item
// routes require a valid bearer token.
func (h *ItemHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	itemRoutes := router.Group("/item", auth)
	itemRoutes.Get("/", h.HandleGetItems)
	itemRoutes.Get("/name/:name", h.HandleGetItemsByName)
	itemRoutes.Get("/:id", h.HandleGetItemByID)
}

// HandleGetItems returns the full catalog.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		log.Printf("Error getting all items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not retrieve items"))
	}
	return c.JSON(items)
}

// HandleGetItemByID returns a single item by ID.
func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(services.ErrItemNotFound.Error()))
	}
	item, err := h.service.GetItemByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(err.Error()))
		}
		log.Printf("Error getting item by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not retrieve item"))
	}
	return c.JSON(item)
}

// HandleGetItemsByName returns all items sharing a name.
func (h *ItemHandler) HandleGetItemsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	items, err := h.service.GetItemsByName(name)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(err.Error()))
		}
		log.Printf("Error getting items by name %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not retrieve items"))
	}
	return c.JSON(items)
}
