package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-market-keeper/internal/adapter"
	"github.com/MKhiriev/go-market-keeper/internal/client"
	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewCLILogger("go-market-client", "info").Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo(models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)))
		return
	}

	log := logger.NewCLILogger("go-market-client", cfg.LogLevel)

	marketAdapter, err := adapter.NewHTTPMarketAdapter(cfg.BaseURL, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create market adapter")
	}
	if token := os.Getenv(client.TokenEnv); token != "" {
		marketAdapter.SetToken(token)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = client.NewApp(marketAdapter, os.Stdout, log).Run(ctx, cfg.Args)
	stop()

	if err != nil {
		if errors.Is(err, client.ErrNoCommand) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
