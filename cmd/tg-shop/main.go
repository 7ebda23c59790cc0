package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Pisarev203/tg-shop/internal/catalog"
	"github.com/Pisarev203/tg-shop/internal/config"
	"github.com/Pisarev203/tg-shop/internal/db"
	"github.com/Pisarev203/tg-shop/internal/notify"
	"github.com/Pisarev203/tg-shop/internal/order"
	"github.com/Pisarev203/tg-shop/internal/transport"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "tg-shop").Logger()

	log.Info().Msg("Shop backend starting...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	dbConn, err := db.New(context.Background(), cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbConn.Close()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Telegram.Enabled() {
		notifier = notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		log.Info().Msg("Telegram notifications enabled")
	} else {
		log.Info().Msg("Telegram notifications disabled (no credentials)")
	}

	catalogSvc := catalog.NewService(catalog.NewRepository(dbConn.Pool))
	orderSvc := order.NewService(order.NewRepository(dbConn.Pool), notifier)

	router := transport.NewRouter(cfg.Admin.Token, catalogSvc, orderSvc)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
