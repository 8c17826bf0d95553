package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BalanceMonitor/config"
	"BalanceMonitor/internal/handlers"
	"BalanceMonitor/internal/logging"
	"BalanceMonitor/internal/notifier"
	"BalanceMonitor/internal/repositories"
	"BalanceMonitor/internal/storage"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Setup database
	db, dialect, err := storage.Open(cfg.Database.URL, cfg.Database.SQLitePath)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Initialize repository
	balanceRepo := repositories.NewBalanceRepository(db)
	if err := balanceRepo.Init(); err != nil {
		// degraded mode: handlers re-ensure the schema before every write
		logger.Error("database initialization failed", zap.Error(err))
	}

	telegram := notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)

	controller, err := handlers.NewController(balanceRepo, telegram, cfg.Auth, dialect, logger)
	if err != nil {
		logger.Fatal("failed to build controller", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           controller.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting balance monitor",
		zap.String("addr", addr),
		zap.String("database", dialect),
		zap.Bool("telegram_configured", cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != ""))

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Handle shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("shutdown complete")
}
