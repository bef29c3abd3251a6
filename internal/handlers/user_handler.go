package handlers

import (
	"errors"
	"log"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for registration, login and user lookup.
type UserHandler struct {
	authService *services.AuthService
	userRepo    repositories.UserRepository
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		authService: authService,
		userRepo:    userRepo,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Creation is
// public; lookups require a valid bearer token.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/create", h.HandleCreateUser)
	userRoutes.Get("/id/:id", auth, h.HandleGetUserByID)
	userRoutes.Get("/:username", auth, h.HandleGetUserByUsername)
}

// RegisterLoginRoute registers the public login route at the app root.
func (h *UserHandler) RegisterLoginRoute(router fiber.Router) {
	router.Post("/login", h.HandleLogin)
}

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// HandleCreateUser handles new user registration.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.NewAPIError("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(toValidationError(err))
	}

	user, err := h.authService.RegisterUser(req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Username, err)
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return c.Status(fiber.StatusConflict).JSON(models.NewAPIError(err.Error()))
		case errors.Is(err, services.ErrPasswordTooShort), errors.Is(err, services.ErrPasswordMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(models.NewAPIError(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not register user"))
	}

	return c.JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token. The token is
// returned in the Authorization response header and in the body.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.NewAPIError("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(toValidationError(err))
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		log.Printf("Error during login for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(models.NewAPIError("Authentication failed"))
	}

	c.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleGetUserByUsername retrieves a user by username.
func (h *UserHandler) HandleGetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	user, err := h.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(services.ErrUserNotFound.Error()))
		}
		log.Printf("Error getting user by username %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not retrieve user"))
	}
	return c.JSON(user)
}

// HandleGetUserByID retrieves a user by numeric ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(services.ErrUserNotFound.Error()))
	}
	user, err := h.userRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.NewAPIError(services.ErrUserNotFound.Error()))
		}
		log.Printf("Error getting user by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewAPIError("Could not retrieve user"))
	}
	return c.JSON(user)
}
