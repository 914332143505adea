package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-forge/internal/client"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("qr-forge-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("qr-forge-client", cfg.App.LogDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
