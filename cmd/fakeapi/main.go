package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ekey-bionyx/config"
	_ "ekey-bionyx/docs" // Swagger docs
	"ekey-bionyx/internal/fakeapi"
	"ekey-bionyx/pkg/log"
)

// @title       ekey bionyx Fake API
// @description In-memory stand-in for the ekey bionyx third-party API: systems, function webhooks and confirmation hooks.
// @version     1
// @host        localhost:8080
// @schemes     http
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.ValidateFakeAPI(); err != nil {
		fmt.Println("Invalid fake_api config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(cfg.Logger.ZapConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting bionyx fake API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.FakeAPI.Token == "" {
		logger.Warn(ctx, "fake_api.token is empty, any bearer token is accepted")
	}

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	seeds := make([]fakeapi.SystemSeed, 0, len(cfg.FakeAPI.Systems))
	for _, s := range cfg.FakeAPI.Systems {
		seeds = append(seeds, fakeapi.SystemSeed{ID: s.ID, Name: s.Name, OwnSystem: s.OwnSystem, Quota: s.Quota})
	}

	// 4. HTTP Server
	srv, err := fakeapi.New(logger, fakeapi.Config{
		Port:            cfg.FakeAPI.Port,
		Mode:            cfg.FakeAPI.Mode,
		Environment:     cfg.Environment.Name,
		Token:           cfg.FakeAPI.Token,
		RateLimitPerMin: cfg.FakeAPI.RateLimitPerMin,
		Quota:           cfg.FakeAPI.Quota,
		WebhookTTL:      cfg.FakeAPI.WebhookTTL,
		Systems:         seeds,
		Registry:        registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize fake API: ", err)
		os.Exit(1)
	}

	for _, s := range srv.Store().Systems() {
		logger.Infof(ctx, "System %q (%s), quota %d", s.SystemName, s.SystemID, s.FunctionWebhookQuotas.Free)
	}

	// 5. Run
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Fake API stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
