package main

import (
	"fmt"

	"cyber-advisor/internal/repository"
	"cyber-advisor/internal/service"
	"cyber-advisor/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the seed answer and advice intent files load",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := validateTables(cfg.Data.SeedAnswersPath, cfg.Data.AdvicePath, cfg.Retrieval, appLogger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seed answers: %d\n", report.Seeds)
	fmt.Fprintf(cmd.OutOrStdout(), "advice categories: %v\n", report.Categories)
	return nil
}

type validationReport struct {
	Seeds      int
	Categories []string
}

// validateTables loads both tables through the same services the server uses.
func validateTables(seedPath, advicePath string, retrieval config.RetrievalConfig, logger *zap.Logger) (validationReport, error) {
	var report validationReport

	seeds := service.NewSeedService(repository.NewSeedFile(seedPath), logger)
	count, err := seeds.Load()
	if err != nil {
		return report, fmt.Errorf("seed answers %s: %w", seedPath, err)
	}
	report.Seeds = count

	intents := service.NewIntentService(repository.NewIntentFile(advicePath), retrieval, logger)
	categories, err := intents.Load()
	if err != nil {
		return report, fmt.Errorf("advice intents %s: %w", advicePath, err)
	}
	for _, category := range categories {
		report.Categories = append(report.Categories, category.String())
	}
	return report, nil
}
