package cmd

import (
	"iplscore-backend/cmd/scorecard-cli/render"
	"iplscore-backend/internal/matchindex"

	"github.com/spf13/cobra"
)

var (
	matchesSeason string
	matchesSearch string
	matchesLimit  int
)

func init() {
	matchesCmd.Flags().StringVar(&matchesSeason, "season", "", "Only list this season (ex. 2025).")
	matchesCmd.Flags().StringVar(&matchesSearch, "search", "", "Rank matches by how closely their name matches this.")
	matchesCmd.Flags().IntVar(&matchesLimit, "limit", 10, "Maximum number of search results.")
	rootCmd.AddCommand(matchesCmd)
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Lists the matches in the local match index.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store matchindex.Store) error {
			idx, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			var seasons []string
			if matchesSeason != "" {
				seasons = []string{matchesSeason}
			}

			if matchesSearch != "" {
				render.SearchResults(cmd.OutOrStdout(), matchindex.Search(idx, matchesSearch, seasons, matchesLimit))
				return nil
			}

			keys := idx.Seasons()
			if matchesSeason != "" {
				keys = []string{matchindex.SeasonKey(matchesSeason)}
			}
			for _, key := range keys {
				render.Matches(cmd.OutOrStdout(), key, idx[key])
			}
			return nil
		})
	},
}
