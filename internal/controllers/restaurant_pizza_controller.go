package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to pizza prices
type RestaurantPizzaController interface {
	// GetAllRestaurantPizzas retrieves all restaurant pizzas
	GetAllRestaurantPizzas(c *gin.Context)
	// CreateRestaurantPizza puts a pizza on a restaurant's menu
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// GetAllRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Description Get every price with its pizza and restaurant
// @Tags restaurant_pizzas
// @Produce json
// @Success 200 {array} models.RestaurantPizzaView
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	restaurantPizzas, err := c.service.GetAllRestaurantPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantPizzaViews(restaurantPizzas))
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Sell an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.NewRestaurantPizza true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input models.NewRestaurantPizza
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, errs.ValidationWrap(models.MsgValidationErrors, err))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaView(created))
}
