package cmd

import (
	"iplscore-backend/cmd/scorecard-cli/render"
	"iplscore-backend/internal/matchindex"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateSeriesCmd)
}

var updateSeriesCmd = &cobra.Command{
	Use:   "update-series",
	Short: "Discovers IPL series ids from cricbuzz and merges them into the series table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cfg.NewClient()
		if err != nil {
			return err
		}
		table, changed, err := matchindex.UpdateSeries(cmd.Context(), client, cfg.SeriesTable)
		if err != nil {
			return err
		}
		render.Series(cmd.OutOrStdout(), table, changed)
		return nil
	},
}
