package router

import (
	"net/http"
	"time"

	"github.com/carshowroom/backend/internal/infrastructure/auth"
	"github.com/carshowroom/backend/internal/infrastructure/logger"
	"github.com/carshowroom/backend/internal/interfaces/http/handler"
	"github.com/carshowroom/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config carries everything route registration needs
type Config struct {
	Engine     *gin.Engine
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Logger     *zap.Logger

	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Intake  *handler.IntakeHandler
	Triage  *handler.TriageHandler
	Sale    *handler.SaleHandler

	// MaxBodyBytes caps request body size; zero disables the limit
	MaxBodyBytes int64
	// RateLimiter applies per-client rate limiting when set
	RateLimiter *middleware.RateLimiter
	// AuthRateLimiter applies a stricter limit to login/register/refresh
	AuthRateLimiter *middleware.RateLimiter
}

// Setup registers the full API surface. Catalog browsing and auth
// entry points are public; everything else requires a token, and
// staff operations additionally require the employee role.
func Setup(cfg Config) {
	engine := cfg.Engine

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.RequestLog(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORS())
	engine.Use(middleware.Secure())
	if cfg.MaxBodyBytes > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}
	if cfg.RateLimiter != nil {
		engine.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	engine.GET("/health", healthCheck)

	api := engine.Group("/api/v1")
	api.GET("/health", healthCheck)

	registerPublicRoutes(api, cfg)

	jwtCfg := middleware.JWTMiddlewareConfig{
		JWTService:     cfg.JWTService,
		TokenBlacklist: cfg.Blacklist,
		Logger:         cfg.Logger,
	}
	authed := api.Group("", middleware.JWTAuthMiddlewareWithConfig(jwtCfg))
	registerClientRoutes(authed, cfg)

	staff := authed.Group("", middleware.RequireEmployee())
	registerEmployeeRoutes(staff, cfg)
}

func registerPublicRoutes(api *gin.RouterGroup, cfg Config) {
	authGroup := api.Group("/auth")
	if cfg.AuthRateLimiter != nil {
		authGroup.Use(middleware.AuthRateLimit(cfg.AuthRateLimiter))
	}
	{
		authGroup.POST("/register", cfg.Auth.Register)
		authGroup.POST("/login", cfg.Auth.Login)
		authGroup.POST("/refresh", cfg.Auth.Refresh)
	}

	catalog := api.Group("/catalog")
	{
		catalog.GET("", cfg.Catalog.List)
		catalog.GET("/featured", cfg.Catalog.Featured)
		catalog.GET("/slug/:slug", cfg.Catalog.GetBySlug)
		catalog.GET("/:id", cfg.Catalog.Get)
		catalog.GET("/:id/configurations", cfg.Catalog.ListConfigurations)
	}
}

func registerClientRoutes(authed *gin.RouterGroup, cfg Config) {
	authGroup := authed.Group("/auth")
	{
		authGroup.POST("/logout", cfg.Auth.Logout)
		authGroup.GET("/me", cfg.Auth.Me)
		authGroup.PUT("/me", cfg.Auth.UpdateProfile)
		authGroup.POST("/password", cfg.Auth.ChangePassword)
	}

	applications := authed.Group("/applications")
	{
		applications.GET("", cfg.Intake.ListMyApplications)
		applications.POST("/trade-in", cfg.Intake.SubmitTradeIn)
		applications.POST("/car-order", cfg.Intake.SubmitCarOrder)
		applications.POST("/credit", cfg.Intake.SubmitCredit)
	}

	testDrives := authed.Group("/test-drives")
	{
		testDrives.GET("", cfg.Intake.ListMyTestDrives)
		testDrives.POST("", cfg.Intake.SubmitTestDrive)
	}

	authed.GET("/contracts/mine", cfg.Sale.ListMine)
}

func registerEmployeeRoutes(staff *gin.RouterGroup, cfg Config) {
	catalog := staff.Group("/catalog")
	{
		catalog.POST("", cfg.Catalog.Create)
		catalog.PUT("/:id", cfg.Catalog.Update)
		catalog.DELETE("/:id", cfg.Catalog.Delete)
		catalog.POST("/:id/configurations", cfg.Catalog.AddConfiguration)
		catalog.DELETE("/:id/configurations/:configId", cfg.Catalog.DeleteConfiguration)
	}

	triage := staff.Group("/triage")
	{
		triage.GET("/requests", cfg.Triage.ListRequests)
		triage.GET("/entries", cfg.Triage.ListEntries)
		triage.GET("/entries/:id", cfg.Triage.Resolve)
		triage.PATCH("/requests/:kind/:id/status", cfg.Triage.ChangeStatus)
	}

	contracts := staff.Group("/contracts")
	{
		contracts.POST("", cfg.Sale.Create)
		contracts.GET("", cfg.Sale.List)
		contracts.GET("/:id", cfg.Sale.Get)
		contracts.POST("/:id/sign", cfg.Sale.Sign)
		contracts.POST("/:id/cancel", cfg.Sale.Cancel)
	}

	users := staff.Group("/users")
	{
		users.POST("/employees", cfg.Auth.CreateEmployee)
		users.POST("/:id/deactivate", cfg.Auth.DeactivateUser)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
