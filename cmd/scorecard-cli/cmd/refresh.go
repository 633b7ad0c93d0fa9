package cmd

import (
	"fmt"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/lib/telemetry"
	"iplscore-backend/lib/timezone"
	"log/slog"

	"github.com/spf13/cobra"
)

var refreshSeason string

func init() {
	refreshCmd.Flags().StringVar(&refreshSeason, "season", matchindex.AllSeasons, `Season to refresh (ex. 2025) or "all".`)
	rootCmd.AddCommand(refreshCmd)
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refetches the match listings of one or every season into the local match index.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cfg.NewClient()
		if err != nil {
			return err
		}
		series, err := matchindex.LoadSeriesTable(cfg.SeriesTable)
		if err != nil {
			return err
		}

		return withStore(cmd, func(store matchindex.Store) error {
			refresher := matchindex.NewRefresher(client, store, series, telemetry.SlogAPI{})
			idx, err := refresher.Refresh(cmd.Context(), refreshSeason)
			if idx == nil {
				return err
			}
			if err != nil {
				slog.Warn("some seasons could not be refreshed", "err", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "refreshed at %s\n", timezone.Stamp(timezone.Now()))
			for _, season := range idx.Seasons() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d matches\n", season, len(idx[season]))
			}
			return nil
		})
	},
}
