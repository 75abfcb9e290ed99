package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lingo-practice/internal/adapter"
	"lingo-practice/internal/adapter/judge"
	"lingo-practice/internal/cache"
	"lingo-practice/internal/config"
	"lingo-practice/internal/domain"
	"lingo-practice/internal/evaluator"
	"lingo-practice/internal/handler"
	"lingo-practice/internal/logger"
	"lingo-practice/internal/middleware"
	"lingo-practice/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.File != "" {
		appLogger.Info("Using config file", zap.String("path", cfg.File))
	}

	// Verdict cache is optional; without Redis every deferred answer reaches the judge
	var verdictCache domain.Cache
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			appLogger.Warn("Redis unavailable, judge verdicts will not be cached", zap.Error(err))
		} else {
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
			verdictCache = adapter.NewRedisCacheAdapter(redisClient)
		}
	}

	semanticJudge, err := judge.New(cfg.Judge, verdictCache)
	if err != nil {
		appLogger.Fatal("Failed to create semantic judge", zap.Error(err))
	}
	if semanticJudge == nil {
		appLogger.Warn("No semantic judge configured; deferred answers will be rejected")
	} else {
		appLogger.Info("Semantic judge initialized",
			zap.String("provider", cfg.Judge.Provider),
			zap.String("model", cfg.Judge.Model),
			zap.Bool("cached", verdictCache != nil))
	}

	policy := evaluator.NewPolicy(evaluator.Thresholds{
		Accept:         cfg.Evaluator.AcceptThreshold,
		Defer:          cfg.Evaluator.DeferThreshold,
		MinDeferTokens: cfg.Evaluator.MinDeferTokens,
	})
	evaluationService := service.NewEvaluationService(evaluator.New(policy, semanticJudge))

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    64 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	handler.RegisterRoutes(app,
		handler.NewEvaluationHandler(evaluationService),
		handler.NewHealthHandler(verdictCache),
		cfg.Server.WriteTimeout,
	)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	appLogger.Info("Server exited gracefully")
}
