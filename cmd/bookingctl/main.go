package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/most-gh/mddroner-booking/internal/integrations/bookingapi"
	"github.com/most-gh/mddroner-booking/internal/service/pricing"
	"github.com/most-gh/mddroner-booking/internal/wizard"
	"github.com/most-gh/mddroner-booking/pkg/logger"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "booking service base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP request timeout")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	// Логи в stderr, чтобы не смешивать с диалогом
	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewWithWriter(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := bookingapi.NewClient(*baseURL, *timeout, log)

	// Прайс с сервера, при недоступности - цены по умолчанию
	prices, err := client.Prices(ctx)
	if err != nil {
		log.Warn("Failed to load prices from %s, using defaults: %v", *baseURL, err)
		prices = pricing.DefaultPrices()
	}

	if err := run(ctx, os.Stdin, os.Stdout, wizard.New(prices), client); err != nil {
		log.Error("bookingctl: %v", err)
		os.Exit(1)
	}
}
