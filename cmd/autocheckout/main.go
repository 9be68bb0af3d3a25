package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giftgenius/autocheckout/internal/checkout"
	"github.com/giftgenius/autocheckout/internal/config"
	"github.com/giftgenius/autocheckout/internal/logger"
	"github.com/giftgenius/autocheckout/internal/psp"
	"github.com/giftgenius/autocheckout/internal/router"
	"github.com/giftgenius/autocheckout/internal/server"
	"github.com/giftgenius/autocheckout/internal/webhook"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.New(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv := server.NewServer(cfg, &log, loggerService)

	stripeClient := psp.NewStripeClient(&cfg.Stripe)
	checkoutService := checkout.NewService(stripeClient, &cfg.Checkout)
	checkoutHandler := checkout.NewHandler(checkoutService)
	webhookHandler := webhook.NewHandler(&cfg.Stripe)

	handlers := &router.Handlers{
		Checkout: checkoutHandler,
		Webhook:  webhookHandler,
	}

	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
