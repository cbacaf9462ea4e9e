package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"urlshortener/internal/bot"
	"urlshortener/internal/cache"
	"urlshortener/internal/checker"
	"urlshortener/internal/clientinfo"
	"urlshortener/internal/config"
	"urlshortener/internal/database"
	"urlshortener/internal/safety"
	"urlshortener/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Info("Starting URL shortener service...", "port", cfg.Port, "base_url", cfg.BaseURL)

	if err := run(cfg, logger); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, cfg.PostgresURL, logger)
	if err != nil {
		logger.Error("Could not connect to Postgres", "error", err)
		return err
	}
	defer db.Close()

	cacheDB, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Error("Could not connect to Redis", "error", err)
		return err
	}
	defer cacheDB.Close()

	ch := cfg.ClickHouse
	analytics, err := database.ConnectClickHouse(ctx, ch.Addr, ch.User, ch.Password, ch.DB, logger)
	if err != nil {
		logger.Error("Could not connect to ClickHouse", "error", err)
		return err
	}
	defer analytics.Close()
	analytics.Start(ctx)

	extractor := clientinfo.New(nil)
	if cfg.GeoIPPath != "" {
		geo, err := clientinfo.Open(cfg.GeoIPPath)
		if err != nil {
			logger.Warn("Could not open GeoIP database, country lookup disabled", "path", cfg.GeoIPPath, "error", err)
		} else {
			defer geo.Close()
			extractor = clientinfo.New(geo)
		}
	}

	var verifier service.SafetyVerifier = safety.AllowAll{}
	if cfg.SafeBrowsingAPIKey != "" {
		verifier = safety.NewGoogleSafeBrowsing(cfg.SafeBrowsingAPIKey, logger)
	} else {
		logger.Warn("SAFE_BROWSING_API_KEY not set, every link is treated as safe")
	}

	urlChecker := checker.New(logger, checker.Options{
		Timeout:    cfg.CheckTimeout,
		MaxHops:    cfg.CheckMaxHops,
		MaxRetries: cfg.CheckMaxRetries,
	})

	store := service.NewCachedStore(db, cacheDB, cfg.CacheTTL, logger)
	shortener := service.NewShortener(store, urlChecker, verifier, cfg.BaseURL, logger)
	resolver := service.NewResolver(store, analytics, cfg.BaseURL+"/exp.html", logger)
	sweeper := service.NewSweeper(store, verifier, logger)

	if cfg.SweepInterval > 0 {
		go sweeper.Run(ctx, cfg.SweepInterval)
	}

	botErr := make(chan error, 1)
	if cfg.TelegramToken != "" {
		tgBot, err := bot.NewTelegramBot(cfg.TelegramToken, shortener, logger)
		if err != nil {
			logger.Error("Could not initialize bot", "error", err)
			return err
		}
		go func() { botErr <- tgBot.Start(ctx) }()
	}

	server := service.NewServer(cfg.Port, service.ServerDeps{
		Shortener: shortener,
		Resolver:  resolver,
		Sweeper:   sweeper,
		Checker:   urlChecker,
		Verifier:  verifier,
		Store:     store,
		Clicks:    analytics,
		Info:      extractor,
		Location:  cfg.Location,
	}, logger)
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start(ctx) }()

	logger.Info("Service is up and running!")

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		<-serverErr
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server stopped with error", "error", err)
			stop()
			return err
		}
	case err := <-botErr:
		if err != nil {
			logger.Error("Bot stopped with error", "error", err)
			stop()
			return err
		}
	}

	logger.Info("Shutting down gracefully...")
	return nil
}
