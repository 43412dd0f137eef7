package bootstrap

import (
	"net/http"

	"cryptoswap-service/internal/application"
	"cryptoswap-service/internal/config"
	"cryptoswap-service/internal/infrastructure/inmem"
	"cryptoswap-service/internal/infrastructure/logx"
	"cryptoswap-service/internal/infrastructure/provider"
	redisstore "cryptoswap-service/internal/infrastructure/redis"
	"cryptoswap-service/internal/infrastructure/worker"

	"github.com/redis/go-redis/v9"
)

// BuildPriceSource returns the feed client for the configured URL.
func BuildPriceSource(cfg config.Config) application.PriceSource {
	return &provider.PriceFeedProvider{
		URL:    cfg.PricesURL,
		Client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// BuildIdempotency builds the submission dedup store. Defaults to Noop;
// IDEMPOTENCY_BACKEND=redis enables the Redis-backed store.
func BuildIdempotency(cfg config.Config) (application.IdempotencyStore, func(), error) {
	if cfg.IdempotencyBackend != "redis" {
		return application.NoopIdempotency{}, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := redisstore.New(rdb, cfg.RedisTTL)
	cleanup := func() { _ = rdb.Close() }
	return store, cleanup, nil
}

// BuildService wires the swap service with its in-memory swap store.
func BuildService(cfg config.Config, idem application.IdempotencyStore) (*application.SwapService, application.SwapRepo) {
	swaps := inmem.NewSwapRepo()
	svc := application.NewSwapService(
		BuildPriceSource(cfg),
		swaps,
		idem,
		application.WithConfirmDelay(cfg.ConfirmDelay),
	)
	return svc, swaps
}

// BuildWorker returns the confirmation worker over the same swap store.
func BuildWorker(cfg config.Config, swaps application.SwapRepo) application.Worker {
	return &worker.Confirmer{
		Swaps:     swaps,
		Delay:     cfg.ConfirmDelay,
		PollEvery: cfg.WorkerPoll,
		Log:       logx.L(),
	}
}
