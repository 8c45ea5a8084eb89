package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"copydesk/internal/bootstrap"
	"copydesk/internal/content"
	"copydesk/internal/http/handlers"
	httpapi "copydesk/internal/http/httpapi"
	"copydesk/internal/infra"
	"copydesk/internal/middleware"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	products, closeCatalog, err := bootstrap.OpenCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open product catalog")
	}
	defer closeCatalog()

	text, images, err := bootstrap.NewGenerators(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure generators")
	}
	orchestrator := bootstrap.NewOrchestrator(cfg, text, images, products, logger)
	app := handlers.NewApp(orchestrator, content.NewCompleter(orchestrator), products, logger)

	var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.RateLimitPerMin, time.Minute)
	if cfg.RedisAddr != "" {
		rdb, err := infra.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer rdb.Close()
		limiter = middleware.NewRedisLimiter(rdb, "", cfg.RateLimitPerMin, time.Minute)
	}
	if cfg.RateLimitPerMin <= 0 {
		limiter = nil
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		Limiter:     limiter,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Str("provider", text.Name()).
			Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
