package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/handler"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/server"
	"github.com/MKhiriev/lookup-gateway/internal/service"
	"github.com/MKhiriev/lookup-gateway/internal/store"
	"github.com/MKhiriev/lookup-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	cfg.App.Version = buildInfo.ResolveVersion(cfg.App.Version)

	log := logger.NewLogger("lookup-gateway", cfg.App.LogLevel)
	log.Debug().
		Str("version", cfg.App.Version).
		Str("address", cfg.Server.HTTPAddress).
		Str("blob_driver", cfg.Storage.Blob.Driver).
		Bool("migrate", cfg.Storage.DB.Migrate).
		Bool("expose_backend_errors", cfg.App.ExposeBackendErrors).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("lookup gateway stopped with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
