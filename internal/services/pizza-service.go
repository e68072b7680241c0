package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to read pizzas from the database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas in insertion order
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, errs.Internal(err)
	}
	return pizzas, nil
}
