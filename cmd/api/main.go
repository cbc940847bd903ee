package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xela07ax/mrp-console/internal/cache"
	"github.com/xela07ax/mrp-console/internal/handler"
	"github.com/xela07ax/mrp-console/internal/infra"
	"github.com/xela07ax/mrp-console/internal/infra/auth"
	"github.com/xela07ax/mrp-console/internal/repository/postgres"
	"github.com/xela07ax/mrp-console/internal/server"
	"github.com/xela07ax/mrp-console/internal/service"
)

func main() {
	// 1. Конфигурация и логгер
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := infra.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Инфраструктура и ресурсы
	repo, err := postgres.New(appCtx, cfg.Database)
	if err != nil {
		logger.Fatal("postgres init failed", zap.Error(err))
	}
	defer repo.Close()

	// База может подниматься дольше сервиса (docker-compose),
	// поэтому ping с ретраями вместо немедленного падения
	pingRetry := retry.New(
		retry.Context(appCtx),
		retry.Attempts(10),
		retry.Delay(time.Second),
	)
	if err := pingRetry.Do(func() error {
		return repo.Ping(appCtx)
	}); err != nil {
		logger.Fatal("postgres unreachable", zap.Error(err))
	}

	if err := repo.RunMigrations(appCtx, cfg.Database.URL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// 3. Сервисы
	roleCache := cache.NewRoleCache(rdb, repo, logger)
	authService := service.NewAuthService(repo, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	userService := service.NewUserService(repo, roleCache, cfg.Auth.BcryptCost)
	roleService := service.NewRoleService(repo, roleCache)
	supplierService := service.NewSupplierService(repo)
	materialService := service.NewMaterialService(repo)

	// 4. HTTP Server
	reg := prometheus.NewRegistry()
	metrics := server.NewMetrics(reg)

	srv := server.New(
		cfg,
		logger,
		auth.NewHSValidator([]byte(cfg.Auth.JWTSecret)),
		repo,
		metrics,
		handler.NewAuthHandler(authService, userService),
		handler.NewUserHandler(userService),
		handler.NewRoleHandler(roleService),
		handler.NewSupplierHandler(supplierService),
		handler.NewMaterialHandler(materialService),
	)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 5. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("mrp-console api started", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-stop // Ждем сигнал
	logger.Info("mrp-console api stopping...")

	// Даем 5 секунд на завершение запросов
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("mrp-console api exited properly")
}
