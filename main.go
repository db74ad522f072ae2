package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/viadorassan/viador/backend/go-services/internal/config"
	"github.com/viadorassan/viador/backend/go-services/internal/database"
	"github.com/viadorassan/viador/backend/go-services/internal/seed"
	"github.com/viadorassan/viador/backend/go-services/internal/server"
	"github.com/viadorassan/viador/backend/go-services/pkg/logger"
	"github.com/viadorassan/viador/backend/go-services/pkg/metrics"
)

func main() {
	os.Exit(run())
}

// run returns the exit code; every client it opens is released by a defer
// before main exits.
func run() int {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return 1
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: store=%s redis=%v prefix=%s", cfg.Store, cfg.Redis.Enabled(), cfg.Server.APIPrefix)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *database.Store
	switch cfg.Store {
	case config.StoreMemory:
		logger.Warnf("using in-memory store; data is lost on restart")
		store = database.NewMemoryStore()
	default:
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Errorf("failed to connect to mongo: %v", err)
			return 1
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warnf("mongo disconnect: %v", err)
			}
		}()
		logger.Infof("connected to mongo database %s", cfg.MongoDB.Database)
		store = database.NewMongoStore(client.Database(cfg.MongoDB.Database))
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	opts := []seed.Option{}
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis ping failed (%v); seeding without a lock", err)
		} else {
			opts = append(opts, seed.WithLocker(seed.NewRedisLocker(rdb, "", cfg.Seed.LockTTL)))
		}
	}

	// Seed before listening: no request is served against an empty catalog.
	if _, err := seed.New(store, opts...).Run(ctx); err != nil {
		logger.Errorf("seeding failed: %v", err)
		return 1
	}

	srv := server.New(cfg.Server, store, prometheus.DefaultGatherer)
	if err := srv.Run(ctx); err != nil {
		logger.Errorf("server: %v", err)
		return 1
	}
	logger.Infof("stopped")
	return 0
}
