package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"game-economy-service/config"
	httpHandler "game-economy-service/internal/adapter/http/handler"
	fileStorage "game-economy-service/internal/adapter/storage/file"
	pgStorage "game-economy-service/internal/adapter/storage/postgres"
	redisStorage "game-economy-service/internal/adapter/storage/redis"
	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"
	"game-economy-service/internal/service"
	"game-economy-service/pkg/logger"
)

// economyStore is the combined persistence surface a backend must provide.
type economyStore interface {
	ports.EconomyStore
	ports.SettingsStore
	ports.HealthChecker
}

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting Game Economy Service")

	ctx := context.Background()

	// Initialize the selected storage backend
	var (
		store          economyStore
		rateLimitStore *redisStorage.RateLimitStore
	)

	switch cfg.Storage.Backend {
	case "file":
		fs, err := fileStorage.NewStore(cfg.Storage.FileDir, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize file store")
		}
		store = fs

	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		store = struct {
			*pgStorage.EconomyStore
			*pgStorage.HealthCheck
		}{pgStorage.NewEconomyStore(pool, log), pgStorage.NewHealthCheck(pool)}

	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		store = struct {
			*redisStorage.EconomyStore
			*redisStorage.HealthCheck
		}{redisStorage.NewEconomyStore(rdb, log), redisStorage.NewHealthCheck(rdb)}
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)

	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("Unknown storage backend")
	}

	// Resolve initial settings: config defaults < legacy import < stored settings.
	initial := domain.Settings{
		Currency:  cfg.Economy.Currency,
		Locale:    cfg.Economy.Locale,
		RewardMin: cfg.Economy.DailyRewardMin,
		RewardMax: cfg.Economy.DailyRewardMax,
	}

	// One-time legacy data migration (file backend only).
	var (
		legacySnap     domain.EconomySnapshot
		legacyImported bool
	)
	if cfg.Storage.Backend == "file" {
		importer := fileStorage.NewLegacyImporter(cfg.Storage.FileDir, log)
		snap, result, err := importer.Import(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Legacy import finished with errors")
		}
		if result.Attempted {
			legacySnap = snap
			legacyImported = true
			if result.Settings != nil {
				initial = *result.Settings
			}
		}
	}

	stored, err := store.LoadSettings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	if stored != nil {
		initial = *stored
	}

	// Core services
	ledger := service.NewLedgerService(initial.Currency, log)
	settingsSvc := service.NewSettingsService(initial, store, ledger, log)
	rewardSvc := service.NewRewardService(ledger, settingsSvc, log)

	// Hydrate state: legacy data first, stored snapshot wins on conflict.
	if legacyImported {
		ledger.BulkLoad(legacySnap.Balances)
		rewardSvc.LoadClaims(legacySnap.Claims)
	}
	snap, err := store.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load economy state")
	}
	ledger.BulkLoad(snap.Balances)
	rewardSvc.LoadClaims(snap.Claims)
	log.Info().
		Int("accounts", len(snap.Balances)).
		Int("claims", len(snap.Claims)).
		Msg("Economy state loaded")

	leaderboardSvc := service.NewLeaderboardService(ledger, cfg.Leaderboard.PageSize, cfg.Leaderboard.CacheTTL)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, hashSvc, tokenSvc)

	// Background checkpointing
	checkpointer := service.NewCheckpointer(store, ledger, rewardSvc, cfg.Storage.CheckpointInterval, log)

	// Persist freshly imported legacy state and settings right away.
	if legacyImported {
		if err := checkpointer.Flush(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to persist imported legacy state")
		}
		if stored == nil {
			if err := store.SaveSettings(ctx, settingsSvc.Settings()); err != nil {
				log.Error().Err(err).Msg("Failed to persist imported legacy settings")
			}
		}
	}

	checkpointCtx, stopCheckpointer := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		checkpointer.Run(checkpointCtx)
	}()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledger,
		RewardSvc:      rewardSvc,
		LeaderboardSvc: leaderboardSvc,
		GridPageSize:   cfg.Leaderboard.GridPageSize,
		SettingsSvc:    settingsSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		Flusher:        checkpointer,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{store},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the checkpointer; its final flush persists the latest state.
	stopCheckpointer()
	wg.Wait()

	log.Info().Msg("Server exited")
}
