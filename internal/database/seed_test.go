package database

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db := openTestDB(t)

	seeded, err := Seed(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	var restaurants, pizzas, menu int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&restaurants).Error)
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&menu).Error)
	assert.Equal(t, int64(len(seedRestaurants)), restaurants)
	assert.Equal(t, int64(len(seedPizzas)), pizzas)
	assert.Equal(t, int64(len(seedMenu)), menu)

	// A second run leaves the data alone
	seeded, err = Seed(db)
	require.NoError(t, err)
	assert.False(t, seeded)
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&restaurants).Error)
	assert.Equal(t, int64(len(seedRestaurants)), restaurants)
}

func TestReset(t *testing.T) {
	db := openTestDB(t)

	_, err := Seed(db)
	require.NoError(t, err)
	require.NoError(t, Reset(db))

	for _, model := range []any{&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}

	seeded, err := Seed(db)
	require.NoError(t, err)
	assert.True(t, seeded)
}
