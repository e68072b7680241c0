package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/logger"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	// Initialize Gin router
	router := setupRouter(configuration, db)

	// Start the server
	if err := serve(configuration, router); err != nil {
		log.WithError(err).Error("Server stopped with an error")
		os.Exit(1)
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger configures the standard logrus logger the same way as the package loggers
func setUpLogger() {
	logger.Configure(log.StandardLogger(),
		config.GetEnvWithDefault("APP_ENV", "development"),
		config.GetEnvWithDefault("LOG_LEVEL", ""))
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates the schema and seeds an empty database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database, conf.DBMaxRetries)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedDatabase {
		_, err = database.Seed(db)
		checkPanicErr(err)
	}
	return db
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter(conf *config.Config, db *gorm.DB) *gin.Engine {
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	return routes.NewRouter(db, routes.Options{
		Logger:      log.StandardLogger(),
		ServiceName: routes.DefaultServiceName,
	})
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests for at most conf.ShutdownTimeout.
func serve(conf *config.Config, handler http.Handler) error {
	server := &http.Server{
		Addr:    conf.Address(),
		Handler: handler,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", conf.Address())
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("Server closed")
	return nil
}
