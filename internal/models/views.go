package models

// RestaurantView is the summary representation of a restaurant
type RestaurantView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailView is a restaurant together with the pizzas it serves
type RestaurantDetailView struct {
	ID               uint                     `json:"id"`
	Name             string                   `json:"name"`
	Address          string                   `json:"address"`
	RestaurantPizzas []RestaurantMenuItemView `json:"restaurant_pizzas"`
}

// RestaurantMenuItemView is a RestaurantPizza as seen from its restaurant
type RestaurantMenuItemView struct {
	PizzaID      uint                 `json:"pizza_id"`
	RestaurantID uint                 `json:"restaurant_id"`
	Price        int                  `json:"price"`
	Pizza        PizzaIngredientsView `json:"pizza"`
}

// PizzaIngredientsView is a pizza without its identifier
type PizzaIngredientsView struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// PizzaView is the summary representation of a pizza
type PizzaView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView is a RestaurantPizza with both sides of the association
type RestaurantPizzaView struct {
	ID           uint           `json:"id"`
	Price        int            `json:"price"`
	PizzaID      uint           `json:"pizza_id"`
	RestaurantID uint           `json:"restaurant_id"`
	Pizza        PizzaView      `json:"pizza"`
	Restaurant   RestaurantView `json:"restaurant"`
}

func NewRestaurantView(r Restaurant) RestaurantView {
	return RestaurantView{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewRestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, NewRestaurantView(r))
	}
	return views
}

// NewRestaurantDetailView expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetailView(r Restaurant) RestaurantDetailView {
	items := make([]RestaurantMenuItemView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		items = append(items, RestaurantMenuItemView{
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Price:        rp.Price,
			Pizza: PizzaIngredientsView{
				Name:        rp.Pizza.Name,
				Ingredients: rp.Pizza.Ingredients,
			},
		})
	}
	return RestaurantDetailView{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: items,
	}
}

func NewPizzaView(p Pizza) PizzaView {
	return PizzaView{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func NewPizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, NewPizzaView(p))
	}
	return views
}

// NewRestaurantPizzaView expects Pizza and Restaurant to be loaded
func NewRestaurantPizzaView(rp RestaurantPizza) RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaView(rp.Pizza),
		Restaurant:   NewRestaurantView(rp.Restaurant),
	}
}

func NewRestaurantPizzaViews(restaurantPizzas []RestaurantPizza) []RestaurantPizzaView {
	views := make([]RestaurantPizzaView, 0, len(restaurantPizzas))
	for _, rp := range restaurantPizzas {
		views = append(views, NewRestaurantPizzaView(rp))
	}
	return views
}
