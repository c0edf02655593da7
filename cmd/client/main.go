package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/habit-tracker/internal/adapter"
	"github.com/MKhiriev/habit-tracker/internal/client"
	"github.com/MKhiriev/habit-tracker/internal/config"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/tui"
	"github.com/MKhiriev/habit-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("habit-tracker-client", "warn")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if len(args) == 1 && args[0] == "version" {
		printBuildInfo(info)
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	tokens, err := client.NewFileTokenStore(cfg.TokenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create token store")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ui := tui.New(serverAdapter, tokens, info, log)

	app := client.NewApp(serverAdapter, tokens, ui, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("%s (built %s, commit %s)\n", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}
