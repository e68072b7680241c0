package database

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")}
	db, err := InitDatabase(cfg, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	return db
}

func TestInitDatabaseSQLite(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"restaurants", "pizzas", "restaurant_pizzas"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestInitDatabaseInMemory(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, 1)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Pizza{Name: "Emma", Ingredients: "Dough"}).Error)

	var count int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"}, 3)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 1*time.Second, retryDelay(1))
	assert.Equal(t, 2*time.Second, retryDelay(2))
	assert.Equal(t, 16*time.Second, retryDelay(5))
	assert.Equal(t, 1*time.Second, retryDelay(0))

	for _, attempt := range []int{6, 31, 34, 64, 1000} {
		assert.Equal(t, maxRetryDelay, retryDelay(attempt), "attempt %d", attempt)
	}
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "log.db")), &gorm.Config{
		Logger: newGormLogger(logger),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))
	hook.Reset()

	var restaurant models.Restaurant
	err = db.First(&restaurant, 42).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, hook.AllEntries(), "missing rows are not logged")

	err = db.Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)
	require.NotEmpty(t, hook.AllEntries(), "query errors go through logrus")
	assert.Contains(t, hook.LastEntry().Message, "no such table")
}

func TestForeignKeysCascadeOnRestaurantDelete(t *testing.T) {
	db := openTestDB(t)

	restaurant := models.Restaurant{Name: "Kiki's Pizza", Address: "address3"}
	pizza := models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{
		RestaurantID: restaurant.ID, PizzaID: pizza.ID, Price: 10,
	}).Error)

	// Plain delete without associations: the store must cascade on its own
	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPriceCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	restaurant := models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"}
	pizza := models.Pizza{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
	require.NoError(t, db.Create(&restaurant).Error)
	require.NoError(t, db.Create(&pizza).Error)

	err := db.Create(&models.RestaurantPizza{RestaurantID: restaurant.ID, PizzaID: pizza.ID, Price: 31}).Error
	assert.Error(t, err)

	err = db.Create(&models.RestaurantPizza{RestaurantID: restaurant.ID, PizzaID: pizza.ID, Price: 30}).Error
	assert.NoError(t, err)
}
