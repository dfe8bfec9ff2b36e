package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "freelanceflow/docs" // swagger docs

	"freelanceflow/internal/auth"
	"freelanceflow/internal/cache"
	"freelanceflow/internal/config"
	"freelanceflow/internal/db"
	"freelanceflow/internal/handler"
	"freelanceflow/internal/model"
	"freelanceflow/internal/repository"
	"freelanceflow/internal/router"
	"freelanceflow/internal/service"
	"freelanceflow/pkg/logger"
)

// @title FreelanceFlow API
// @version 1.0
// @description Multi-tenant client management API with JWT authentication.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.Env)
	defer func() { _ = log.Sync() }()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("database handle", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Client{}); err != nil {
		log.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	clientService := service.NewClientService(clientRepo, cacheClient)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(cfg.Env)
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, healthHandler, authHandler, clientHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	// Stop accepting new connections on SIGINT/SIGTERM, let in-flight
	// requests finish, then close the store connections. A hard deadline
	// forces exit if shutdown stalls.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := cacheClient.Close(); err != nil {
		log.Error("redis close", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("database close", zap.Error(err))
	}
	log.Info("server stopped")
}
