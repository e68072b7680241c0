package controllers

import (
	"context"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockRestaurantService struct {
	mock.Mock
}

func (m *mockRestaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	restaurants, _ := args.Get(0).([]models.Restaurant)
	return restaurants, args.Error(1)
}

func (m *mockRestaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func (m *mockRestaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPizzaService struct {
	mock.Mock
}

func (m *mockPizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	pizzas, _ := args.Get(0).([]models.Pizza)
	return pizzas, args.Error(1)
}

type mockRestaurantPizzaService struct {
	mock.Mock
}

func (m *mockRestaurantPizzaService) GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error) {
	args := m.Called(ctx)
	restaurantPizzas, _ := args.Get(0).([]models.RestaurantPizza)
	return restaurantPizzas, args.Error(1)
}

func (m *mockRestaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input models.NewRestaurantPizza) (models.RestaurantPizza, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.RestaurantPizza), args.Error(1)
}
