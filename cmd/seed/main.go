package main

import (
	"fmt"
	"os"

	"cyber-advisor/pkg/config"
	"cyber-advisor/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg       *config.Config
	appLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Maintenance commands for the advice data files",
	Long:  "Import the training corpus into Postgres and validate the seed answer and advice intent files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		appLogger = logger.Get()
		return nil
	},
	SilenceUsage: true,
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
