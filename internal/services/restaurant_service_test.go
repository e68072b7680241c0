package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	restaurants, err := service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	first := testutil.CreateRestaurant(t, db, "Karen's Pizza Shack", "address1")
	second := testutil.CreateRestaurant(t, db, "Sanjay's Pizza", "address2")

	restaurants, err = service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, first.ID, restaurants[0].ID)
	assert.Equal(t, second.ID, restaurants[1].ID)
	assert.Equal(t, "address2", restaurants[1].Address)
}

func TestGetRestaurantByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	restaurant := testutil.CreateRestaurant(t, db, "Kiki's Pizza", "address3")
	other := testutil.CreateRestaurant(t, db, "Sanjay's Pizza", "address2")
	emma := testutil.CreatePizza(t, db, "Emma", "Dough, Tomato Sauce, Cheese")
	geri := testutil.CreatePizza(t, db, "Geri", "Dough, Tomato Sauce, Cheese, Pepperoni")
	testutil.CreateRestaurantPizza(t, db, restaurant, emma, 5)
	testutil.CreateRestaurantPizza(t, db, restaurant, geri, 12)
	testutil.CreateRestaurantPizza(t, db, other, geri, 7)

	t.Run("loads pizzas and prices", func(t *testing.T) {
		found, err := service.GetRestaurantByID(ctx, restaurant.ID)
		require.NoError(t, err)

		assert.Equal(t, "Kiki's Pizza", found.Name)
		require.Len(t, found.RestaurantPizzas, 2)
		assert.Equal(t, 5, found.RestaurantPizzas[0].Price)
		assert.Equal(t, "Emma", found.RestaurantPizzas[0].Pizza.Name)
		assert.Equal(t, 12, found.RestaurantPizzas[1].Price)
		assert.Equal(t, "Geri", found.RestaurantPizzas[1].Pizza.Name)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := service.GetRestaurantByID(ctx, 9999)
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, models.MsgRestaurantNotFound, err.Error())
	})
}

func TestDeleteRestaurant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	restaurant := testutil.CreateRestaurant(t, db, "Kiki's Pizza", "address3")
	other := testutil.CreateRestaurant(t, db, "Sanjay's Pizza", "address2")
	pizza := testutil.CreatePizza(t, db, "Melanie", "Dough, Sauce, Ricotta, Red peppers, Mustard")
	testutil.CreateRestaurantPizza(t, db, restaurant, pizza, 5)
	testutil.CreateRestaurantPizza(t, db, other, pizza, 6)

	require.NoError(t, service.DeleteRestaurant(ctx, restaurant.ID))

	_, err := service.GetRestaurantByID(ctx, restaurant.ID)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	// Only the deleted restaurant's association is gone, the pizza stays
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &models.RestaurantPizza{}))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &models.Pizza{}))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &models.Restaurant{}))

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := service.DeleteRestaurant(ctx, restaurant.ID)
		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, models.MsgRestaurantNotFound, err.Error())
	})
}

func TestRestaurantServiceStoreFailure(t *testing.T) {
	service := NewRestaurantService(testutil.BrokenDB(t))
	ctx := context.Background()

	_, err := service.GetAllRestaurants(ctx)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))

	_, err = service.GetRestaurantByID(ctx, 1)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))

	err = service.DeleteRestaurant(ctx, 1)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
}
