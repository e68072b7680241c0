package services

import (
	"context"
	"errors"
	"math"
	"reflect"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService provides methods to list and create the prices
// restaurants charge for pizzas
type RestaurantPizzaService interface {
	// GetAllRestaurantPizzas retrieves all RestaurantPizza rows with their pizza and restaurant
	GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error)
	// CreateRestaurantPizza validates the input and inserts a new RestaurantPizza
	CreateRestaurantPizza(ctx context.Context, input models.NewRestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{
		db:       db,
		validate: newValidator(),
	}
}

// newValidator returns a validator that also knows the "whole" tag
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("whole", isWholeNumber); err != nil {
		panic(err)
	}
	return validate
}

// isWholeNumber fails floats with a fractional part. Other kinds pass.
func isWholeNumber(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		value := field.Float()
		return value == math.Trunc(value)
	default:
		return true
	}
}

func (s *restaurantPizzaService) GetAllRestaurantPizzas(ctx context.Context) ([]models.RestaurantPizza, error) {
	var restaurantPizzas []models.RestaurantPizza
	err := s.db.WithContext(ctx).
		Preload("Pizza").
		Preload("Restaurant").
		Order("id").
		Find(&restaurantPizzas).Error
	if err != nil {
		return nil, errs.Internal(err)
	}
	return restaurantPizzas, nil
}

// CreateRestaurantPizza checks, in order, the price range, the pizza and
// the restaurant. The first failing check decides the error.
func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input models.NewRestaurantPizza) (models.RestaurantPizza, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.RestaurantPizza{}, errs.ValidationWrap(models.MsgValidationErrors, err)
	}

	db := s.db.WithContext(ctx)

	var pizza models.Pizza
	if err := findByOptionalID(db, &pizza, input.PizzaID, models.MsgInvalidPizzaID); err != nil {
		return models.RestaurantPizza{}, err
	}

	var restaurant models.Restaurant
	if err := findByOptionalID(db, &restaurant, input.RestaurantID, models.MsgInvalidRestaurantID); err != nil {
		return models.RestaurantPizza{}, err
	}

	restaurantPizza := models.RestaurantPizza{
		Price:        int(*input.Price),
		PizzaID:      pizza.ID,
		RestaurantID: restaurant.ID,
	}
	if err := db.Omit(clause.Associations).Create(&restaurantPizza).Error; err != nil {
		return models.RestaurantPizza{}, errs.Internal(err)
	}

	restaurantPizza.Pizza = pizza
	restaurantPizza.Restaurant = restaurant
	return restaurantPizza, nil
}

// findByOptionalID loads dest by id. A missing, fractional, non-positive,
// out of range or unknown id is a validation error carrying message.
func findByOptionalID(db *gorm.DB, dest any, id *float64, message string) error {
	rowID, ok := wholeID(id)
	if !ok {
		return errs.Validation(message)
	}
	if err := db.First(dest, rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Validation(message)
		}
		return errs.Internal(err)
	}
	return nil
}

// wholeID converts a decoded JSON number to a row id
func wholeID(id *float64) (uint, bool) {
	if id == nil {
		return 0, false
	}
	value := *id
	if value < 1 || value >= math.MaxInt64 || value != math.Trunc(value) {
		return 0, false
	}
	return uint(value), true
}
