package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/prepr3ss/prepress-web-center-sub001/cmd"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/core/container"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/core/logger"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/core/routes"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/database"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/middleware"
)

func main() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	if len(os.Args) > 1 {
		cmd.Execute()
		return
	}

	appLogger := logger.NewLogger()
	defer appLogger.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		appLogger.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := database.RunMigrations(appLogger, "./migrations"); err != nil {
		appLogger.Fatal("Database migration failed", zap.Error(err))
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		appLogger.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Connected to the database successfully")

	appContainer := container.NewAppContainer(db)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())

	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		appLogger.Fatal("Server stopped", zap.Error(err))
	}
}
