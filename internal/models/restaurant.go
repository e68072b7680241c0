package models

// Restaurant represents a restaurant and the pizzas it serves.
// Deleting a restaurant removes its RestaurantPizza rows.
type Restaurant struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE;"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
