package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/handler"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/server"
	"github.com/MKhiriev/habit-tracker/internal/service"
	"github.com/MKhiriev/habit-tracker/internal/store"
	"github.com/MKhiriev/habit-tracker/internal/utils"
	"github.com/MKhiriev/habit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("habit-tracker-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("habit-tracker-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnection(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, utils.NewUUIDGenerator(), log)

	services, err := service.NewServices(storages, db, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
