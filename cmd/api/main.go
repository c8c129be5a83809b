package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/your-org/prizedraw-backend/internal/common/cache"
	"github.com/your-org/prizedraw-backend/internal/common/config"
	"github.com/your-org/prizedraw-backend/internal/common/logger"
	auditdelivery "github.com/your-org/prizedraw-backend/internal/features/audit/delivery/http"
	auditpostgres "github.com/your-org/prizedraw-backend/internal/features/audit/repository/postgres"
	auditservice "github.com/your-org/prizedraw-backend/internal/features/audit/service"
	drawdelivery "github.com/your-org/prizedraw-backend/internal/features/draw/delivery/http"
	drawpostgres "github.com/your-org/prizedraw-backend/internal/features/draw/repository/postgres"
	drawservice "github.com/your-org/prizedraw-backend/internal/features/draw/service"
	"github.com/your-org/prizedraw-backend/internal/platform/db"
	redisplatform "github.com/your-org/prizedraw-backend/internal/platform/redis"
)

func main() {
	// Create cancellable root context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config load: %v\n", err)
		return
	}

	logger.Init("prizedraw-backend", cfg.Debug)

	pg, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open postgres")
	}
	defer pg.Close()

	cacheSvc := cache.NewCacheService(nil)
	if cfg.Redis.Enabled {
		rdb, err := redisplatform.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to open redis")
		}
		defer rdb.Close()
		cacheSvc = cache.NewCacheService(rdb.Client)
	}

	auditRepo := auditpostgres.NewAuditRepository(pg)
	auditSvc := auditservice.NewAuditService(auditRepo)

	drawRepo := drawpostgres.NewDrawRepository(pg)
	drawSvc := drawservice.NewDrawService(drawRepo, cacheSvc, auditSvc, cfg.Cache.DrawTTL)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.Origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	drawdelivery.NewDrawHandler(drawSvc).RegisterRoutes(api)
	auditdelivery.NewAuditHandler(auditSvc).RegisterRoutes(api)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown")
	}
	logger.Info().Msg("Server stopped")
}
