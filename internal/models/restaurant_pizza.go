package models

const (
	// MinPrice is the lowest price a restaurant can charge for a pizza
	MinPrice = 1
	// MaxPrice is the highest price a restaurant can charge for a pizza
	MaxPrice = 30
)

// RestaurantPizza links a restaurant to a pizza it sells, at a given price
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30"`
	PizzaID      uint `gorm:"not null;index"`
	RestaurantID uint `gorm:"not null;index"`

	Pizza      Pizza
	Restaurant Restaurant
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza is the input for creating a RestaurantPizza.
// Fields are pointers so that a missing value can be told apart from zero.
// JSON numbers decode as float64, so 15.0 and 1.5e1 are read as 15; whether a
// value is whole is checked afterwards.
type NewRestaurantPizza struct {
	Price        *float64 `json:"price" validate:"required,whole,min=1,max=30"`
	PizzaID      *float64 `json:"pizza_id"`
	RestaurantID *float64 `json:"restaurant_id"`
}
