package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/viadorassan/viador/backend/go-services/internal/config"
	"github.com/viadorassan/viador/backend/go-services/internal/database"
	"github.com/viadorassan/viador/backend/go-services/internal/seed"
	"github.com/viadorassan/viador/backend/go-services/pkg/logger"
)

// seed runs the startup seeding once and exits, for deploy jobs that
// prepare the database before the API rolls out.
func main() {
	os.Exit(run())
}

func run() int {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return 1
	}
	if cfg.Store != config.StoreMongo {
		logger.Errorf("seed command needs STORE=%s, got %s", config.StoreMongo, cfg.Store)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Errorf("failed to connect to mongo: %v", err)
		return 1
	}
	defer client.Disconnect(context.Background())

	var opts []seed.Option
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		opts = append(opts, seed.WithLocker(seed.NewRedisLocker(rdb, "", cfg.Seed.LockTTL)))
	}

	rep, err := seed.New(database.NewMongoStore(client.Database(cfg.MongoDB.Database)), opts...).Run(ctx)
	if err != nil {
		logger.Errorf("seeding failed: %v", err)
		return 1
	}
	inserted, skipped := 0, 0
	for _, n := range rep.Inserted {
		inserted += n
	}
	for _, n := range rep.Skipped {
		skipped += n
	}
	logger.Infof("seed complete: %d inserted, %d already present", inserted, skipped)
	return 0
}
