package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/carshowroom/backend/internal/application/catalog"
	identityapp "github.com/carshowroom/backend/internal/application/identity"
	intakeapp "github.com/carshowroom/backend/internal/application/intake"
	saleapp "github.com/carshowroom/backend/internal/application/sale"
	triageapp "github.com/carshowroom/backend/internal/application/triage"
	"github.com/carshowroom/backend/internal/infrastructure/auth"
	"github.com/carshowroom/backend/internal/infrastructure/config"
	"github.com/carshowroom/backend/internal/infrastructure/logger"
	"github.com/carshowroom/backend/internal/infrastructure/persistence"
	"github.com/carshowroom/backend/internal/interfaces/http/handler"
	"github.com/carshowroom/backend/internal/interfaces/http/middleware"
	"github.com/carshowroom/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting showroom backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist: Redis when reachable, in-memory otherwise
	blacklist := newTokenBlacklist(cfg, log)

	// Initialize repositories
	carRepo := persistence.NewGormCarRepository(db.DB)
	configRepo := persistence.NewGormCarConfigurationRepository(db.DB)
	tradeInRepo := persistence.NewGormTradeInRepository(db.DB)
	carOrderRepo := persistence.NewGormCarOrderRepository(db.DB)
	creditRepo := persistence.NewGormCreditRepository(db.DB)
	testDriveRepo := persistence.NewGormTestDriveRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	clientProfileRepo := persistence.NewGormClientProfileRepository(db.DB)
	employeeProfileRepo := persistence.NewGormEmployeeProfileRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)

	// Transactional stores
	ledgerStore := persistence.NewLedgerStore(db.DB)
	saleStore := persistence.NewSaleStore(db.DB)
	identityStore := persistence.NewIdentityStore(db.DB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT)
	capabilities := identityapp.NewProfileCapabilityChecker(clientProfileRepo, employeeProfileRepo)
	carService := catalogapp.NewCarService(carRepo, configRepo)
	identityService := identityapp.NewService(userRepo, clientProfileRepo, employeeProfileRepo, identityStore, jwtService, blacklist)
	intakeService := intakeapp.NewService(ledgerStore, testDriveRepo, entryRepo, carRepo, capabilities)
	triageService := triageapp.NewService(tradeInRepo, carOrderRepo, creditRepo, testDriveRepo, entryRepo, ledgerStore, capabilities)
	saleService := saleapp.NewService(contractRepo, saleStore, carRepo, clientProfileRepo, capabilities)

	// Initialize HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	}
	var authLimiter *middleware.RateLimiter
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter = middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	}

	router.Setup(router.Config{
		Engine:          engine,
		JWTService:      jwtService,
		Blacklist:       blacklist,
		Logger:          log,
		Auth:            handler.NewAuthHandler(identityService),
		Catalog:         handler.NewCatalogHandler(carService, cfg.Catalog),
		Intake:          handler.NewIntakeHandler(intakeService),
		Triage:          handler.NewTriageHandler(triageService),
		Sale:            handler.NewSaleHandler(saleService),
		MaxBodyBytes:    cfg.HTTP.MaxBodySize,
		RateLimiter:     limiter,
		AuthRateLimiter: authLimiter,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// newTokenBlacklist connects to Redis for token revocation. If Redis is
// unreachable the server still starts with an in-memory fallback, which
// is fine for a single instance but does not survive restarts.
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		_ = client.Close()
		return auth.NewInMemoryTokenBlacklist()
	}

	log.Info("Redis connected successfully")
	return auth.NewRedisTokenBlacklist(client)
}
