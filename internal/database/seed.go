package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedMenu lists {restaurant index, pizza index, price}
var seedMenu = [][3]int{
	{0, 0, 1},
	{1, 1, 4},
	{2, 2, 5},
}

// Seed fills an empty database with demo restaurants, pizzas and prices.
// It reports whether any rows were inserted.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	err := db.Transaction(func(tx *gorm.DB) error {
		restaurants := make([]models.Restaurant, len(seedRestaurants))
		copy(restaurants, seedRestaurants)
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}

		pizzas := make([]models.Pizza, len(seedPizzas))
		copy(pizzas, seedPizzas)
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		menu := make([]models.RestaurantPizza, 0, len(seedMenu))
		for _, m := range seedMenu {
			menu = append(menu, models.RestaurantPizza{
				RestaurantID: restaurants[m[0]].ID,
				PizzaID:      pizzas[m[1]].ID,
				Price:        m[2],
			})
		}
		return tx.Create(&menu).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info("Database seeded successfully")
	return true, nil
}

// Reset deletes every row from the three tables
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to reset table: %w", err)
			}
		}
		return nil
	})
}
