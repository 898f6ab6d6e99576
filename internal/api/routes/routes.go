package routes

import (
	"fmt"
	"net/http"

	"company-directory/internal/api/handlers"
	"company-directory/internal/api/middleware"
	"company-directory/internal/auth"
	"company-directory/internal/cache"
	"company-directory/internal/config"
	"company-directory/internal/logger"
	"company-directory/internal/repository"
	"company-directory/internal/service"
	"company-directory/internal/session"
	"company-directory/internal/validation"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by /health and used as the page asset version
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application.
// The returned handler also rewrites tunnelled form methods before routing.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (http.Handler, error) {
	router, err := NewRouter(db, cfg)
	if err != nil {
		return nil, err
	}
	return middleware.MethodOverride(router), nil
}

// NewRouter builds the gin engine with every route registered
func NewRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	dashboardService := service.NewDashboardService(companyRepo, employeeRepo, cache.NewMemoryStore(), cfg.DashboardCacheTTL())
	companyService := service.NewCompanyService(companyRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, companyRepo, validator)
	if cfg.CacheInvalidateOnWrite {
		companyService.WithInvalidator(dashboardService)
		employeeService.WithInvalidator(dashboardService)
	}

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("", cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Page rendering
	renderer := view.NewRenderer(session.NewFlashStore(cfg.JWTSecret, cfg.CookieSecure), cfg.AppName, Version)
	renderer.Share(auth.SharedProps)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	homeHandler := handlers.NewHomeHandler(renderer)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, renderer)
	companyHandler := handlers.NewCompanyHandler(companyService, renderer)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, renderer)
	authHandler := auth.NewAuthHandler(authService, authMiddleware, renderer, validator)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Pages below share the signed-in user when there is one
	web := router.Group("/", authMiddleware.OptionalAuth())
	web.GET("/", homeHandler.Welcome)

	// Auth routes
	guest := web.Group("/", authMiddleware.RedirectIfAuthenticated())
	{
		guest.GET("/login", authHandler.LoginPage)
		guest.POST("/login", authHandler.Login)
	}
	web.POST("/logout", authHandler.Logout)
	web.GET("/verify-email", authMiddleware.RequireAuth(), authHandler.VerifyNotice)

	// Management routes require a signed-in user with a verified email
	managed := web.Group("/", authMiddleware.RequireAuth(), authMiddleware.RequireVerified())
	{
		managed.GET("/dashboard", dashboardHandler.Index)

		companies := managed.Group("/companies")
		{
			companies.GET("", companyHandler.Index)
			companies.GET("/create", companyHandler.Create)
			companies.POST("", companyHandler.Store)
			companies.GET("/:id", companyHandler.Show)
			companies.GET("/:id/edit", companyHandler.Edit)
			companies.PUT("/:id", companyHandler.Update)
			companies.PATCH("/:id", companyHandler.Update)
			companies.DELETE("/:id", companyHandler.Destroy)
		}

		employees := managed.Group("/employees")
		{
			employees.POST("", employeeHandler.Store)
			employees.DELETE("/:id", employeeHandler.Destroy)
		}
	}

	router.NoRoute(authMiddleware.OptionalAuth(), func(c *gin.Context) {
		renderer.Error(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	logger.New().WithFields(map[string]interface{}{
		"cache_ttl_seconds":   cfg.DashboardCacheTTLSeconds,
		"invalidate_on_write": cfg.CacheInvalidateOnWrite,
	}).Debug("Routes registered")

	return router, nil
}
