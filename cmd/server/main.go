package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/config"
	"github.com/bloodbanker/bloodbanker-server/internal/database"
	"github.com/bloodbanker/bloodbanker-server/internal/handler"
	"github.com/bloodbanker/bloodbanker-server/internal/logger"
	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
	"github.com/bloodbanker/bloodbanker-server/internal/queue"
	"github.com/bloodbanker/bloodbanker-server/internal/repository"
	"github.com/bloodbanker/bloodbanker-server/internal/router"
	"github.com/bloodbanker/bloodbanker-server/internal/service"
	"github.com/bloodbanker/bloodbanker-server/internal/utils"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Open(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info("connected to MongoDB", zap.String("db", cfg.DBName))

	db := client.Database(cfg.DBName)
	users := repository.NewUserRepo(db)
	donations := repository.NewDonationRepo(db)
	blogs := repository.NewBlogRepo(db)
	locations := repository.NewLocationRepo(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Warn("email index not created", zap.Error(err))
	}

	// Redis is optional: without it caching and rate limiting pass through.
	rdb, err := config.NewRedisClient(config.LoadRedisConfig())
	if err != nil {
		log.Warn("redis unavailable, cache and rate limit disabled", zap.Error(err))
	} else {
		defer func() { _ = rdb.Close() }()
	}
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb, log)

	var events handler.EventPublisher
	if qcfg := config.LoadQueueConfig(); qcfg.Enabled {
		events = service.NewQueuePublisher(qcfg.URL, qcfg.Queue)
		consumer := &queue.Consumer{URL: qcfg.URL, Queue: qcfg.Queue, Dir: qcfg.LogDir, Log: log}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("donation consumer stopped", zap.Error(err))
			}
		}()
	}

	issuer := utils.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
	guards := router.Guards{
		Verify: middleware.VerifyToken(issuer, log),
		Gate:   middleware.NewRoleGate(users, log),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log))

	router.Setup(e, router.Handlers{
		Auth:      handler.NewAuthHandler(issuer, log),
		Users:     handler.NewUserHandler(users, log),
		Donations: handler.NewDonationHandler(donations, events, cache, log),
		Blogs:     handler.NewBlogHandler(blogs, cache, log),
		Locations: handler.NewLocationHandler(locations, cache, log),
		Stats:     handler.NewStatsHandler(users, donations, blogs, log),
	}, guards, cache.Middleware())

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("BloodBanker listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
