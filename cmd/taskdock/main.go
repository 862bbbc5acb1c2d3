package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taskdock/taskdock/internal/app"
	"github.com/taskdock/taskdock/internal/platform/cache"
	"github.com/taskdock/taskdock/internal/shared"
	"github.com/taskdock/taskdock/internal/todos"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var store todos.Store
	switch cfg.StoreBackend {
	case app.StoreBackendRedis:
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("connect redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		store = todos.NewRedisStore(redisClient, cfg.RedisPrefix)
	default:
		store = todos.NewMemoryStore()
	}

	auditRecorder := shared.NewLogRecorder(logger)

	todoService, err := todos.NewService(
		store,
		todos.DefaultPolicy(),
		auditRecorder,
		todos.ItemLinks(cfg.SiteAPIURL),
		todos.SearchLinks(cfg.SiteAPIURL),
	)
	if err != nil {
		logger.Error("wire todo service", slog.Any("error", err))
		os.Exit(1)
	}
	todosHandler := todos.NewHandler(logger, todoService)

	router := app.NewRouter(app.RouterParams{
		Logger:       logger,
		Config:       cfg,
		TodosHandler: todosHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("store", cfg.StoreBackend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}
