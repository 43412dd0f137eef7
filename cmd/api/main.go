package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptoswap-service/internal/bootstrap"
	"cryptoswap-service/internal/config"
	httpserver "cryptoswap-service/internal/infrastructure/http"
	"cryptoswap-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	idem, closeIdem, err := bootstrap.BuildIdempotency(cfg)
	if err != nil {
		logger.Fatal("bootstrap idempotency", zap.Error(err))
	}
	defer closeIdem()

	svc, swaps := bootstrap.BuildService(cfg, idem)

	// One-shot feed load. A failure is terminal: the service stays up and
	// answers 503 with the generic message, matching the load-failed screen.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	if err := svc.LoadPrices(loadCtx); err != nil {
		logger.Error("price feed load failed", zap.String("url", cfg.PricesURL), zap.Error(err))
	} else {
		logger.Info("price feed loaded", zap.String("url", cfg.PricesURL))
	}
	loadCancel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go bootstrap.BuildWorker(cfg, swaps).Start(ctx)

	srv := httpserver.NewServer(svc, cfg.IconBasePath)
	server := &http.Server{
		Addr:    addr,
		Handler: httpserver.NewRouter(srv),
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
