package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"permission-engine/internal/cache"
	"permission-engine/internal/config"
	"permission-engine/internal/messaging/command"
	"permission-engine/internal/messaging/consumer"
	"permission-engine/internal/messaging/notifier"
	"permission-engine/internal/repository"
	"permission-engine/internal/service"
	"permission-engine/internal/state"
)

func Run(cfg config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	delayedCtx, repoCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	repo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", "error", err)
	}

	store := state.NewStore()
	if err := store.Load(ctx, repo); err != nil {
		logger.Fatalw("failed to load state", "error", err)
	}

	var resultCache *cache.PermissionCache
	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalw("failed to connect to redis", "error", err)
		}
		resultCache = cache.New(client, 0)
	}

	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)

	var invalidator consumer.CacheInvalidator
	var svcCache service.Cache
	if resultCache != nil {
		invalidator = resultCache
		svcCache = resultCache
	}
	consumer.Run(ctx, wg, logger, cfg.Kafka, store, invalidator)

	svc := service.NewPermissionService(logger, store, repo, notif, svcCache)
	command.Run(ctx, wg, logger, cfg.Kafka, svc)
	logger.Infow("permission engine running", "development", cfg.Development)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	repoCancel()
	delayedWg.Wait()
}
