package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"iplscore-backend/cmd/scorecard-cli/render"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/internal/scorecard"
	"iplscore-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	scorecardLive    bool
	scorecardMatchNo int
	scorecardSeason  string
	scorecardJson    bool
)

func init() {
	scorecardCmd.Flags().BoolVar(&scorecardLive, "live", false, "Use the match that is currently live.")
	scorecardCmd.Flags().IntVar(&scorecardMatchNo, "no", 0, "Use the match with this match number.")
	scorecardCmd.Flags().StringVar(&scorecardSeason, "season", "", "Season --no is looked up in, defaults to the current season.")
	scorecardCmd.Flags().BoolVar(&scorecardJson, "json", false, "Print the scorecard as json.")
	rootCmd.AddCommand(scorecardCmd)
}

var scorecardCmd = &cobra.Command{
	Use:   "scorecard [match_id]",
	Short: "Prints the scorecard of a match.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := cfg.NewClient()
		if err != nil {
			return err
		}

		var matchId string
		switch {
		case len(args) == 1:
			matchId = args[0]
		case scorecardLive:
			matchId, err = client.FetchLiveMatchId(ctx)
			if err != nil {
				return err
			}
		case scorecardMatchNo > 0:
			matchId, err = resolveMatchNo(cmd, scorecardSeason, scorecardMatchNo)
			if err != nil {
				return err
			}
		default:
			return errors.New("provide a match id, --live or --no")
		}

		doc, err := client.FetchScorecard(ctx, matchId)
		if err != nil {
			return err
		}
		tel := telemetry.API(telemetry.NoopAPI{})
		if verbose {
			tel = telemetry.SlogAPI{}
		}
		card := scorecard.NewAssembler(tel).Assemble(ctx, doc)

		if scorecardJson {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(card)
		}
		render.Scorecard(cmd.OutOrStdout(), card)
		return nil
	},
}

func resolveMatchNo(cmd *cobra.Command, season string, matchNo int) (string, error) {
	if season == "" {
		series, err := matchindex.LoadSeriesTable(cfg.SeriesTable)
		if err != nil {
			return "", err
		}
		season = cfg.Season(series)
	}

	var match matchindex.Match
	err := withStore(cmd, func(store matchindex.Store) error {
		idx, err := store.Load(cmd.Context())
		if err != nil {
			return err
		}
		match, err = matchindex.Lookup(idx, season, matchNo)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("resolve match %d: %w", matchNo, err)
	}
	return match.Id, nil
}
