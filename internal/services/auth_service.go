package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Registration and login failures surfaced to clients.
var (
	ErrUsernameTaken      = errors.New("This username already exists")
	ErrPasswordTooShort   = errors.New("Password length must be more than 8 characters")
	ErrPasswordMismatch   = errors.New("The entered passwords do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// minPasswordLength is the inclusive lower bound on accepted passwords.
const minPasswordLength = 7

// AuthService handles business logic for registration, login and token
// validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	cartRepo   repositories.CartRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, cartRepo repositories.CartRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser validates the registration input, creates the user's empty
// cart, hashes the password and saves the user. The validation checks run in
// a fixed order; the first failing check wins.
func (s *AuthService) RegisterUser(username, password, confirmPassword string) (*models.User, error) {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %s: %w", username, err)
	}

	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	// The cart is created and persisted before the user that references it.
	cart := &models.Cart{}
	cart.Recalculate()
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart for user %s: %w", username, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		CartID:   cart.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// LoginUser authenticates a user and returns a signed JWT if successful.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.Username,
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
