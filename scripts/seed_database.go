package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
)

func main() {
	// Parse command line flags
	dbURI := flag.String("db", config.GetEnvWithDefault("DB_URI", config.DefaultDatabaseURI), "Database URI (sqlite:///app.db, postgresql://user:pw@host/db)")
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and price before seeding")
	flag.Parse()

	cfg, err := database.ParseDatabaseURI(*dbURI)
	if err != nil {
		log.Fatal("Invalid database URI:", err)
	}

	db, err := database.InitDatabase(cfg, 1)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
		fmt.Println("✓ Existing data deleted")
	}

	seeded, err := database.Seed(db)
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if !seeded {
		fmt.Println("Database already contains restaurants, nothing to do.")
		fmt.Println("Run with -reset to start over.")
		return
	}

	fmt.Printf("✓ Database seeded: %s\n", *dbURI)
}
