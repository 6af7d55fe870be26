package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/palette-lab/api/api"
	"github.com/palette-lab/api/datastore"
	"github.com/palette-lab/api/listings"
	"github.com/palette-lab/api/mcpserver"
	"github.com/palette-lab/api/migrations"
	"github.com/palette-lab/api/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		DatabaseType:       getEnv("DB_TYPE", "postgres"),
		DatabaseHost:       getEnv("DB_HOST", "localhost"),
		DatabaseUser:       getEnv("DB_USER", "postgres"),
		DatabasePassword:   getEnv("DB_PASSWORD", ""),
		DatabaseName:       getEnv("DB_NAME", "palettelab"),
		SSLMode:            getEnv("SSL_MODE", "disable"),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration:  getEnvInt("JWT_ACCESS_DURATION", 900),     // 15 minutes
		JwtRefreshDuration: getEnvInt("JWT_REFRESH_DURATION", 604800), // 7 days
		JwtDomain:          getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		ListingsAPIURL:     getEnv("LISTINGS_API_URL", "https://api.listings.example.com/v2"),
		MCPHost:            getEnv("MCP_HOST", "localhost"),
		MCPPort:            getEnvInt("MCP_PORT", 8081),
		DevMode:            getEnvBool("DEV_MODE", true),
	}

	// Create database connection
	connStr := datastore.BuildDBConnStr(
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseHost,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(config.DatabaseType, connStr)
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}
	defer dbConn.Close()

	// Run database migrations
	fmt.Println("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create user repository
	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		log.Fatalf("Failed to create user repository: %v", userRepoErr)
	}

	// Create favorite color repository
	favoriteRepo, favoriteRepoErr := datastore.NewFavoriteDatabase(dbConn)
	if favoriteRepoErr != nil {
		log.Fatalf("Failed to create favorite repository: %v", favoriteRepoErr)
	}

	// Create featured color repository
	featuredRepo, featuredRepoErr := datastore.NewFeaturedColorDatabase(dbConn)
	if featuredRepoErr != nil {
		log.Fatalf("Failed to create featured color repository: %v", featuredRepoErr)
	}

	// Create application
	app := &api.Application{
		Config:            config,
		UserRepo:          userRepo,
		FavoriteRepo:      favoriteRepo,
		FeaturedColorRepo: featuredRepo,
		Listings:          listings.NewClient(config.ListingsAPIURL),
	}

	// Start scheduler for featured color generation
	colorScheduler := scheduler.NewScheduler(featuredRepo)
	colorScheduler.Start()

	// Start MCP server for agent clients
	mcpServer := mcpserver.NewServer(mcpserver.Config{
		Host: config.MCPHost,
		Port: config.MCPPort,
	})
	mcpServer.Start()

	// Create and start server. The scheduler and MCP transport are
	// stopped as part of the server's graceful shutdown.
	mux := http.NewServeMux()

	fmt.Println("Palette Lab API Starting...")
	err := app.Serve(mux,
		mcpServer.Stop,
		func(ctx context.Context) error {
			colorScheduler.Stop()
			return nil
		},
	)
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
