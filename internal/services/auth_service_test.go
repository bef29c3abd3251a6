package services_test

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCartRepository is a testify mock of repositories.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) GetByID(id uint) (*models.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

// notFoundErr builds the wrapped not-found error repositories return.
func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	authService := services.NewAuthService(mockUsers, mockCarts, "test_jwt_secret")

	// Successful registration creates the cart before the user.
	mockUsers.On("GetByUsername", "Alice").Return(nil, notFoundErr("user Alice")).Once()
	mockCarts.On("Create", mock.AnythingOfType("*models.Cart")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Cart).ID = 7
	}).Return(nil).Once()
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 1
	}).Return(nil).Once()

	user, err := authService.RegisterUser("Alice", "Secret12", "Secret12")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Username)
	assert.Equal(t, uint(7), user.CartID)
	// The stored password is a verifiable bcrypt hash, not the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Secret12")))
	mockUsers.AssertExpectations(t)
	mockCarts.AssertExpectations(t)
}

func TestAuthService_RegisterUserUsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	authService := services.NewAuthService(mockUsers, mockCarts, "test_jwt_secret")

	mockUsers.On("GetByUsername", "Alice").Return(&models.User{ID: 1, Username: "Alice"}, nil)

	_, err := authService.RegisterUser("Alice", "Secret12", "Secret12")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	// The duplicate check wins even when later checks would also fail.
	_, err = authService.RegisterUser("Alice", "short", "other")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	// No cart or user may be created on a failed registration.
	mockCarts.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUserPasswordTooShort(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	authService := services.NewAuthService(mockUsers, mockCarts, "test_jwt_secret")

	mockUsers.On("GetByUsername", "Bob").Return(nil, notFoundErr("user Bob"))

	// Six characters fails regardless of confirmation match.
	_, err := authService.RegisterUser("Bob", "Secr12", "Secr12")
	assert.ErrorIs(t, err, services.ErrPasswordTooShort)

	_, err = authService.RegisterUser("Bob", "Secr12", "different")
	assert.ErrorIs(t, err, services.ErrPasswordTooShort)

	mockCarts.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUserPasswordMismatch(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	authService := services.NewAuthService(mockUsers, mockCarts, "test_jwt_secret")

	mockUsers.On("GetByUsername", "Bob").Return(nil, notFoundErr("user Bob"))

	_, err := authService.RegisterUser("Bob", "Secret12", "Secret13")
	assert.ErrorIs(t, err, services.ErrPasswordMismatch)

	mockCarts.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockUsers, mockCarts, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Secret12"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       3,
		Username: "Alice",
		Password: string(hashedPassword),
	}

	// Successful login issues a signed token carrying the username as subject.
	mockUsers.On("GetByUsername", "Alice").Return(user, nil).Once()
	token, err := authService.LoginUser("Alice", "Secret12")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "Alice", claims["sub"])
	assert.Equal(t, "Alice", claims["username"])
	assert.Equal(t, float64(3), claims["user_id"])

	// Wrong password.
	mockUsers.On("GetByUsername", "Alice").Return(user, nil).Once()
	_, err = authService.LoginUser("Alice", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user gets the same generic error.
	mockUsers.On("GetByUsername", "nobody").Return(nil, notFoundErr("user nobody")).Once()
	_, err = authService.LoginUser("nobody", "Secret12")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCarts := new(MockCartRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockUsers, mockCarts, testJWTSecret)

	// Valid token.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "Alice",
		"user_id":  3,
		"username": "Alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", claims["username"])

	// Garbage token.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Expired token.
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "Alice",
		"username": "Alice",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)

	// Token signed with a different secret.
	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "Alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	foreignTokenString, _ := foreignToken.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(foreignTokenString)
	assert.Error(t, err)
}
