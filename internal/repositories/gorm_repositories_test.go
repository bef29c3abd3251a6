package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Uint64

// openTestDB opens a uniquely named in-memory SQLite database so tests do not
// share state, and migrates the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Cart{},
		&models.CartEntry{},
		&models.Order{},
		&models.OrderLine{},
	))
	return db
}

func TestGORMUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Username: "Alice", Password: "hashed", CartID: 1}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byName, err := repo.GetByUsername("Alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", byID.Username)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The unique index rejects a second Alice.
	err = repo.Create(&models.User{Username: "Alice", Password: "other"})
	assert.Error(t, err)
}

func TestGORMItemRepository(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMItemRepository(db)

	round := models.Item{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"}
	square := models.Item{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"}
	require.NoError(t, repo.Create(&round))
	require.NoError(t, repo.Create(&square))

	all, err := repo.GetAll()
	assert.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Round Widget", all[0].Name)
	assert.True(t, all[0].Price.Equal(decimal.RequireFromString("2.99")), "price was %s", all[0].Price)

	byID, err := repo.GetByID(square.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Square Widget", byID.Name)

	byName, err := repo.GetByName("Round Widget")
	assert.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, round.ID, byName[0].ID)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.GetByName("No Such Widget")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMCartRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	items := repositories.NewGORMItemRepository(db)
	carts := repositories.NewGORMCartRepository(db)

	round := models.Item{Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
	square := models.Item{Name: "Square Widget", Price: decimal.RequireFromString("1.99")}
	require.NoError(t, items.Create(&round))
	require.NoError(t, items.Create(&square))

	cart := &models.Cart{}
	require.NoError(t, carts.Create(cart))
	assert.NotZero(t, cart.ID)

	// Duplicate units of the same item must survive a save/load cycle.
	cart.AddItem(round)
	cart.AddItem(round)
	cart.AddItem(square)
	require.NoError(t, carts.Save(cart))

	loaded, err := carts.GetByID(cart.ID)
	assert.NoError(t, err)
	require.Len(t, loaded.Items, 3)
	assert.Equal(t, round.ID, loaded.Items[0].ID)
	assert.Equal(t, round.ID, loaded.Items[1].ID)
	assert.Equal(t, square.ID, loaded.Items[2].ID)
	assert.True(t, loaded.Total.Equal(decimal.RequireFromString("7.97")), "total was %s", loaded.Total)

	// Saving a cleared cart removes the entry rows.
	loaded.Items = nil
	loaded.Recalculate()
	require.NoError(t, carts.Save(loaded))

	reloaded, err := carts.GetByID(cart.ID)
	assert.NoError(t, err)
	assert.Empty(t, reloaded.Items)
	assert.True(t, reloaded.Total.Equal(decimal.Zero))

	_, err = carts.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMOrderRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	items := repositories.NewGORMItemRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	round := models.Item{Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
	require.NoError(t, items.Create(&round))

	// No orders yet: an empty sequence, not an error.
	history, err := orders.GetByUserID(1)
	assert.NoError(t, err)
	assert.Empty(t, history)

	order := &models.Order{
		UserID: 1,
		Items:  []models.Item{round, round},
		Total:  decimal.RequireFromString("5.98"),
	}
	require.NoError(t, orders.Create(order))
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	history, err = orders.GetByUserID(1)
	assert.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
	require.Len(t, history[0].Items, 2)
	assert.Equal(t, round.ID, history[0].Items[0].ID)
	assert.True(t, history[0].Total.Equal(decimal.RequireFromString("5.98")), "total was %s", history[0].Total)

	// Another user's history stays separate.
	history, err = orders.GetByUserID(2)
	assert.NoError(t, err)
	assert.Empty(t, history)
}
