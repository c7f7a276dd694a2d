package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"baleconnect/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}
	defer func() { _ = app.Close() }()

	if configs.SeedDemoData == "true" {
		if err := app.CreateSeeder().Run(context.Background()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine: every variable can come from the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		StorePath:      envOr("STORE_PATH", "data/baleconnect"),
		TransportMode:  envOr("TRANSPORT_MODE", "local"),
		RemoteBaseURL:  os.Getenv("REMOTE_BASE_URL"),
		LocalLatencyMS: envOr("LOCAL_LATENCY_MS", "300"),
		GeoBaseURL:     os.Getenv("GEO_BASE_URL"),
		GeoCountryCode: envOr("GEO_COUNTRY_CODE", "th"),
		GeoLanguage:    envOr("GEO_LANGUAGE", "th"),
		SeedDemoData:   envOr("SEED_DEMO_DATA", "true"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
