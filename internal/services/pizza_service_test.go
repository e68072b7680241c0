package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllPizzas(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := NewPizzaService(db)
	ctx := context.Background()

	pizzas, err := service.GetAllPizzas(ctx)
	require.NoError(t, err)
	assert.Empty(t, pizzas)

	testutil.CreatePizza(t, db, "Emma", "Dough, Tomato Sauce, Cheese")
	testutil.CreatePizza(t, db, "Geri", "Dough, Tomato Sauce, Cheese, Pepperoni")
	testutil.CreatePizza(t, db, "Melanie", "Dough, Sauce, Ricotta, Red peppers, Mustard")

	pizzas, err = service.GetAllPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Geri", pizzas[1].Name)
	assert.Equal(t, "Melanie", pizzas[2].Name)
}

func TestGetAllPizzasStoreFailure(t *testing.T) {
	service := NewPizzaService(testutil.BrokenDB(t))

	_, err := service.GetAllPizzas(context.Background())
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
}
