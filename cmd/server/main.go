// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/toondari/webtoon-backbone/internal/api"
	"github.com/toondari/webtoon-backbone/internal/app"
	"github.com/toondari/webtoon-backbone/internal/config"
	"github.com/toondari/webtoon-backbone/internal/di"
	"github.com/toondari/webtoon-backbone/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.DebugMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	container := di.GetContainer()
	if err := app.InitServices(container, cfg, logger); err != nil {
		logger.Fatal("failed to initialize services", zap.Error(err))
	}
	logger.Info("services initialized",
		zap.Strings("services", container.GetNames()))

	router, err := api.SetupRouter(container, logger, cfg.DebugMode)
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	runWithGracefulShutdown(router, cfg.Port, logger)
}

func runWithGracefulShutdown(router *gin.Engine, port string, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced server shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
