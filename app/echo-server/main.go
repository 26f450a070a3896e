package main

import (
	serverMetrics "autoOpsAI/app/echo-server/metrics"
	"autoOpsAI/app/echo-server/router"
	"autoOpsAI/business/simulation"
	"autoOpsAI/internal/bootstrap"
	"autoOpsAI/internal/middleware"
	"autoOpsAI/internal/rest"
	"autoOpsAI/pkg/config"
	"autoOpsAI/pkg/database"
	"autoOpsAI/pkg/database/redis"
	"autoOpsAI/pkg/logger"
	"autoOpsAI/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting AutoOps Intelligence", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()
	logger.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	// Redis is optional: without it the service runs uncached and unlocked.
	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", "error", err)
			rdb = nil
		} else {
			defer func() { _ = redis.CloseRedisClient(rdb) }()
		}
	}

	// Init service
	svc, err := bootstrap.NewService(cfg, db, rdb)
	if err != nil {
		logger.Fatal("Failed to build intelligence service", "error", err)
	}

	// Init handler
	insightsHandler := rest.NewInsightsHandler(svc)
	actionsHandler := rest.NewActionsHandler(svc)
	ordersHandler := rest.NewOrdersHandler(svc)
	leadsHandler := rest.NewLeadsHandler(svc)
	analysisHandler := rest.NewAnalysisHandler(svc)
	adminHandler := rest.NewIntelligenceAdminHandler(svc)
	workflowsHandler := rest.NewWorkflowsHandler(svc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
		Timeout: cfg.Server.RequestTimeout,
	}))

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get sql db", "error", err)
	}
	serverMetrics.Register(e, sqlDB)

	// Setup routes
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	api := e.Group("/api/v1")
	router.SetupInsightsRoutes(api, insightsHandler, authRequired)
	router.SetupActionsRoutes(api, actionsHandler, authRequired)
	router.SetOrdersRoutes(api, ordersHandler, authRequired)
	router.SetupLeadsRoutes(api, leadsHandler)
	router.SetupAnalysisRoutes(api, analysisHandler, authRequired)
	router.SetupAdminRoutes(api, adminHandler, authRequired, adminOnly)
	router.SetupWorkflowsRoutes(api, workflowsHandler, authRequired)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	if cfg.Simulation.Enabled {
		repos := bootstrap.Repositories(db)
		sim := simulation.NewSimulator(cfg.Simulation.Seed, repos.Customers, repos.Products, svc)
		scheduler := simulation.NewScheduler("order-simulator", cfg.Simulation.Interval, simulation.RealTicker)

		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduler.Run(ctx, func(ctx context.Context) error {
				_, err := sim.Step(ctx)
				return err
			})
		}()
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	cancel()
	wg.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
