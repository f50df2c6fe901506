package main

import (
	"fmt"
	"os"

	"uniformnavi/internal/config"
	"uniformnavi/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "uniformnavi",
	Short: "ユニフォームナビ content site backend",
	Long: `uniformnavi serves the workwear article collection and the contact and
advisor forms over HTTP, and can render the collection into a static site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		warnings, err := cfg.Validate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger.InitLogger(cfg)
		for _, w := range warnings {
			logger.Log.Warn("config: " + w)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Log.Sync()
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, buildCmd, newCmd, tokenCmd)
	if err := rootCmd.Execute(); err != nil {
		logger.Log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
