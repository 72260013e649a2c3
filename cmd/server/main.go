package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/AwesomeTrading/ordercore/internal/adapter/cache"
	"github.com/AwesomeTrading/ordercore/internal/adapter/in_memory"
	"github.com/AwesomeTrading/ordercore/internal/adapter/kafka"
	"github.com/AwesomeTrading/ordercore/internal/adapter/pg"
	"github.com/AwesomeTrading/ordercore/internal/api/http"
	"github.com/AwesomeTrading/ordercore/internal/config"
	"github.com/AwesomeTrading/ordercore/internal/core"
	"github.com/AwesomeTrading/ordercore/internal/logger"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	var store port.EventStore
	if cfg.Postgres.DSN != "" {
		pgStore, err := pg.NewPgEventStore(ctx, cfg.Postgres.DSN)
		if err != nil {
			zlog.Fatal("connect to Postgres", zap.Error(err))
		}
		defer pgStore.Close(ctx)
		store = pgStore
	} else {
		zlog.Warn("POSTGRES_DSN not set, using in-memory event store")
		store = in_memory.NewMemoryStore()
	}

	var stateCache port.StateCache
	if cfg.Redis.Addr != "" {
		stateCache = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	} else {
		zlog.Warn("REDIS_ADDR not set, using in-memory state cache")
		stateCache = in_memory.NewCache()
	}

	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, zlog)
		defer kp.Close()
		publisher = kp
	} else {
		zlog.Warn("KAFKA_BROKERS not set, using in-memory publisher")
		publisher = in_memory.NewPublisher()
	}

	engine := core.NewEngine(store, stateCache, publisher, zlog)
	server := http.NewHTTPServer(engine)

	zlog.Info("starting HTTP server", zap.String("addr", cfg.HTTP.Addr))
	if err := server.Run(cfg.HTTP.Addr); err != nil {
		zlog.Fatal("HTTP server failed", zap.Error(err))
	}
}
