package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantService provides methods to read and delete restaurants
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants in insertion order
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its pizzas and prices
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its RestaurantPizza rows
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, errs.Internal(err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, notFoundOr(err, models.MsgRestaurantNotFound)
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		return notFoundOr(err, models.MsgRestaurantNotFound)
	}

	// Removing the associations here keeps the cascade independent of
	// whether the store enforces foreign keys.
	if err := db.Select(clause.Associations).Delete(&restaurant).Error; err != nil {
		return errs.Internal(err)
	}
	return nil
}

// notFoundOr maps gorm's missing-record error to a NotFound with message
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(message)
	}
	return errs.Internal(err)
}
