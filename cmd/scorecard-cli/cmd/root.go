package cmd

import (
	"fmt"
	"iplscore-backend/internal/config"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/lib/serviceutil"
	"iplscore-backend/lib/telemetry"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:           "scorecard-cli",
	Short:         "scorecard-cli fetches IPL scorecards from cricbuzz and manages the local match index.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "Path to the config file.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func Execute() {
	ctx := serviceutil.SignalContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withStore opens the configured match index for the duration of `fn`.
func withStore(cmd *cobra.Command, fn func(store matchindex.Store) error) error {
	store, closeStore, err := cfg.OpenStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}
