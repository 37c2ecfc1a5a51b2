package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/connector-sync/internal/adapter"
	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/crypto"
	"github.com/MKhiriev/connector-sync/internal/handler"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/metrics"
	"github.com/MKhiriev/connector-sync/internal/server"
	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("connector-sync")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("adapter_timeout", cfg.Adapter.RequestTimeout).
		Int("list_limit", cfg.Adapter.ListLimit).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	sealer, err := crypto.NewSealer(cfg.App.SecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sealer")
	}

	factory := adapter.NewClientFactory(adapter.ClientFactoryConfig{
		Timeout:   cfg.Adapter.RequestTimeout,
		ListLimit: cfg.Adapter.ListLimit,
	})

	m := metrics.New()
	services := service.NewServices(storages, sealer, factory, m, log)

	handlers, err := handler.NewHandlers(services, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(services, cfg.Workers, log)
	workersDone := make(chan struct{})
	go func() {
		bg.Run(ctx)
		close(workersDone)
	}()

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
		stop()
	}
	<-workersDone
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
