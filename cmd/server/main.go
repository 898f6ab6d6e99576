package main

import (
	"log"
	"net/http"
	"time"

	"company-directory/internal/api/routes"
	"company-directory/internal/config"
	"company-directory/internal/database"
	"company-directory/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "company-directory/docs" // This is needed for swag
)

//	@title			Company Directory API
//	@version		1.0
//	@description	Server-rendered directory of companies and their employees, with a cached dashboard and session sign-in.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.Infof("Starting %s on port %s", cfg.AppName, port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal("Failed to start server:", err)
	}
}
