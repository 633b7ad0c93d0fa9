package main

import (
	"flag"
	"iplscore-backend/internal/api"
	"iplscore-backend/internal/config"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/lib/serviceutil"
	"iplscore-backend/lib/telemetry"
	"log/slog"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the server config.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	series, err := matchindex.LoadSeriesTable(cfg.SeriesTable)
	if err != nil {
		serviceutil.Fatal("load series table", err)
	}
	store, closeStore, err := cfg.OpenStore(ctx)
	if err != nil {
		serviceutil.Fatal("open match index", err)
	}
	defer closeStore()

	client, err := cfg.NewClient()
	if err != nil {
		serviceutil.Fatal("create cricbuzz client", err)
	}

	tel := telemetry.SlogAPI{}
	server := api.NewServer(api.Options{
		Fetcher:       client,
		Store:         store,
		Refresher:     matchindex.NewRefresher(client, store, series, tel),
		Tel:           tel,
		CurrentSeason: cfg.Season(series),
		CORSOrigins:   cfg.CORSOrigins,
	})
	slog.Info("resolved current season", "season", cfg.Season(series))

	err = serviceutil.StartHttpServer(ctx, cfg.Port, server.Handler())
	if err != nil {
		slog.Error("http server", "err", err)
	}
}
