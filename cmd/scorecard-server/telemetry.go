package main

import (
	"context"
	"errors"
	"iplscore-backend/lib/serviceutil"
	"iplscore-backend/lib/telemetry"
	"log/slog"
	"os"
	"time"
)

// InitTelemetry sets up logging and, if a telemetry.json5 can be found,
// tracing and metrics.
func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)
	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.SetupFromEnv(ctx, "scorecard-server")
	if errors.Is(err, os.ErrNotExist) {
		slog.WarnContext(ctx, "telemetry.json5 not found, traces and metrics are disabled")
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("shutdown telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx, 15*time.Second)
}
