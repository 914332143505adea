package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/cache"
	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/handler"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/server"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/templates"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qr-forge-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB.DSN, cfg.History.MaxItems, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	renderCache, err := cache.New(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating render cache")
	}
	defer renderCache.Close()

	extra, err := templates.Load(ctx, cfg.Templates.FilePath, validators.NewTemplateValidator())
	if err != nil {
		log.Fatal().Err(err).Msg("error loading templates")
	}

	services, err := service.NewServices(storages, renderCache, templates.NewLibrary(extra), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	for _, line := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Lines() {
		fmt.Println(line)
	}
}
