// Package testutil provides a throwaway database and fixtures for tests
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB opens a migrated SQLite database in a temporary directory.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.InitDatabase(cfg, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateRestaurant inserts a restaurant
func CreateRestaurant(t *testing.T, db *gorm.DB, name, address string) models.Restaurant {
	t.Helper()

	restaurant := models.Restaurant{Name: name, Address: address}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

// CreatePizza inserts a pizza
func CreatePizza(t *testing.T, db *gorm.DB, name, ingredients string) models.Pizza {
	t.Helper()

	pizza := models.Pizza{Name: name, Ingredients: ingredients}
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

// CreateRestaurantPizza puts pizza on restaurant's menu at price
func CreateRestaurantPizza(t *testing.T, db *gorm.DB, restaurant models.Restaurant, pizza models.Pizza, price int) models.RestaurantPizza {
	t.Helper()

	restaurantPizza := models.RestaurantPizza{RestaurantID: restaurant.ID, PizzaID: pizza.ID, Price: price}
	require.NoError(t, db.Omit("Pizza", "Restaurant").Create(&restaurantPizza).Error)
	return restaurantPizza
}

// CountRows returns the number of rows in model's table
func CountRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

// BrokenDB returns a database whose tables do not exist, so every query fails
func BrokenDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "broken.db")}
	db, err := database.InitDatabase(cfg, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
