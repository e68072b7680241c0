package routes

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Handlers groups the controllers served by the router
type Handlers struct {
	Restaurants      controllers.RestaurantController
	Pizzas           controllers.PizzaController
	RestaurantPizzas controllers.RestaurantPizzaController
}

// Options tunes the router built by NewRouter
type Options struct {
	// Logger receives the access log. Request logging is off when nil.
	Logger *logrus.Logger
	// ServiceName is reported by the health check
	ServiceName string
}

// NewHandlers wires services and controllers on top of db
func NewHandlers(db *gorm.DB) Handlers {
	return Handlers{
		Restaurants:      controllers.NewRestaurantController(services.NewRestaurantService(db)),
		Pizzas:           controllers.NewPizzaController(services.NewPizzaService(db)),
		RestaurantPizzas: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	}
}

// NewRouter builds the gin engine serving the API backed by db
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics())
	if opts.Logger != nil {
		router.Use(middleware.RequestLogger(opts.Logger))
	}

	SetupRoutes(router, NewHandlers(db), opts)
	return router
}

// SetupRoutes defines the routes for the Gin router
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler(opts.ServiceName))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/restaurants", h.Restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", h.Restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", h.Restaurants.DeleteRestaurant)

	router.GET("/pizzas", h.Pizzas.GetAllPizzas)

	router.GET("/restaurant_pizzas", h.RestaurantPizzas.GetAllRestaurantPizzas)
	router.POST("/restaurant_pizzas", h.RestaurantPizzas.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
