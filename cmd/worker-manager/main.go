package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bizstart-workers/internal/api"
	"bizstart-workers/internal/common/bizinfo"
	"bizstart-workers/internal/common/camunda"
	"bizstart-workers/internal/common/config"
	"bizstart-workers/internal/common/database"
	"bizstart-workers/internal/common/kakao"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/observability"
	"bizstart-workers/internal/refdata"
	resolvelocation "bizstart-workers/internal/workers/location/resolve-location"
	matchpolicyfunds "bizstart-workers/internal/workers/policy/match-policy-funds"
	analyzeviability "bizstart-workers/internal/workers/viability/analyze-viability"
	estimatestartupcost "bizstart-workers/internal/workers/viability/estimate-startup-cost"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console", "stderr").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(observability.Options{
		ServiceName:    cfg.Observability.ServiceName,
		TracingEnabled: cfg.Observability.TracingEnabled,
		Logger:         log,
	})

	ctx := context.Background()

	// --- Redis cache (optional) ---
	cache, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis client init failed", zap.Error(err))
	}
	if cache.Enabled() {
		if err := cache.Ping(ctx); err != nil {
			zapLog.Warn("redis unreachable, upstream responses will not be cached until it recovers", zap.Error(err))
		} else {
			zapLog.Info("Redis cache connected")
		}
	} else {
		zapLog.Info("Redis address not configured, caching disabled")
	}

	// --- Upstream clients ---
	listings := bizinfo.NewClient(bizinfo.Config{
		BaseURL:      cfg.APIs.Bizinfo.BaseURL,
		APIKey:       cfg.APIs.Bizinfo.APIKey,
		Timeout:      config.GetDuration(cfg.APIs.Bizinfo.Timeout),
		DefaultCount: cfg.APIs.Bizinfo.DefaultCount,
		CacheTTL:     time.Duration(cfg.Database.Redis.ListingTTL) * time.Second,
	}, cache, log)
	if cfg.APIs.Bizinfo.APIKey == "" {
		zapLog.Warn("BIZINFO_API_KEY not set, policy fund matching will fail per request")
	}

	geocoder := kakao.NewClient(kakao.Config{
		BaseURL:  cfg.APIs.Kakao.BaseURL,
		APIKey:   cfg.APIs.Kakao.APIKey,
		Timeout:  config.GetDuration(cfg.APIs.Kakao.Timeout),
		CacheTTL: time.Duration(cfg.Database.Redis.GeocodeTTL) * time.Second,
	}, cache, log)
	if cfg.APIs.Kakao.APIKey == "" {
		zapLog.Warn("KAKAO_API_KEY not set, only known commercial areas will resolve")
	}

	// --- Handlers ---
	tables := refdata.Default()

	costCfg := estimatestartupcost.LoadConfig()
	costCfg.Timeout = workerTimeout(cfg, estimatestartupcost.TaskType, costCfg.Timeout)
	costHandler := estimatestartupcost.NewHandler(costCfg, tables, obs, log)

	viabilityCfg := analyzeviability.LoadConfig()
	viabilityCfg.Timeout = workerTimeout(cfg, analyzeviability.TaskType, viabilityCfg.Timeout)
	viabilityHandler := analyzeviability.NewHandler(viabilityCfg, tables, costHandler.Estimator(), obs, log)

	fundsCfg := matchpolicyfunds.LoadConfig()
	fundsCfg.Timeout = workerTimeout(cfg, matchpolicyfunds.TaskType, fundsCfg.Timeout)
	fundsHandler := matchpolicyfunds.NewHandler(fundsCfg, listings, obs, log)

	locationCfg := resolvelocation.LoadConfig()
	locationCfg.Timeout = workerTimeout(cfg, resolvelocation.TaskType, locationCfg.Timeout)
	locationHandler := resolvelocation.NewHandler(locationCfg, geocoder, obs, log)

	// --- Zeebe client and workers ---
	zeebeClient, err := camunda.NewClientWithConfig(ctx, camunda.ConfigFrom(cfg.Camunda), log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	handlers := map[string]camunda.JobHandler{
		analyzeviability.TaskType:    viabilityHandler,
		estimatestartupcost.TaskType: costHandler,
		matchpolicyfunds.TaskType:    fundsHandler,
		resolvelocation.TaskType:     locationHandler,
	}

	var workers []*camunda.Worker
	for taskType, handler := range handlers {
		if w := camunda.StartWorker(zeebeClient.Zeebe(), taskType, config.GetWorkerConfig(cfg, taskType), handler, log); w != nil {
			workers = append(workers, w)
		}
	}
	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	// --- REST facade, health and metrics ---
	server := api.NewServer(viabilityHandler, costHandler, fundsHandler, locationHandler, api.Options{
		AllowOrigins:   cfg.HTTP.AllowOrigins,
		RequestTimeout: config.GetDuration(cfg.Camunda.RequestTimeout),
		Probes: map[string]api.Probe{
			"zeebe": zeebeClient.HealthCheck,
			"redis": cache.Ping,
		},
	}, log)
	httpServer := server.HTTPServer(cfg.HTTP.Address)

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.HTTP.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping HTTP server", zap.Error(err))
	}
	for _, w := range workers {
		w.Close()
	}
	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	if err := cache.Close(); err != nil {
		zapLog.Error("Error closing Redis client", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down telemetry", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// workerTimeout prefers the per-worker timeout from the config file.
func workerTimeout(cfg *config.Config, taskType string, fallback time.Duration) time.Duration {
	if wcfg, ok := cfg.Workers[taskType]; ok && wcfg.Timeout > 0 {
		return config.GetDuration(wcfg.Timeout)
	}
	return fallback
}
