package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"cyber-advisor/internal/repository"
	"cyber-advisor/pkg/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	corpusCSVPath   string
	corpusCachePath string
	corpusForce     bool
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Import the training corpus CSV into Postgres",
	Long: "Replace the training_questions table with the rows of the training CSV. " +
		"Files whose hash matches the last import are skipped unless --force is given.",
	RunE: runCorpus,
}

func init() {
	corpusCmd.Flags().StringVar(&corpusCSVPath, "csv", "", "Path to the training CSV (defaults to TRAINING_CSV)")
	corpusCmd.Flags().StringVar(&corpusCachePath, "cache", "", "Path to the import hash cache (defaults to .seed_cache.json next to the CSV)")
	corpusCmd.Flags().BoolVar(&corpusForce, "force", false, "Import even when the CSV is unchanged")
	rootCmd.AddCommand(corpusCmd)
}

func runCorpus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	csvPath := corpusCSVPath
	if csvPath == "" {
		csvPath = cfg.Data.TrainingCSV
	}
	cacheFile := corpusCachePath
	if cacheFile == "" {
		cacheFile = filepath.Join(filepath.Dir(csvPath), ".seed_cache.json")
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		appLogger.Warn("Failed to load cache, will import anyway", zap.Error(err))
		cache = newCacheData()
	}

	fileHash, err := calculateFileHash(csvPath)
	if err != nil {
		return err
	}
	if !corpusForce && cache.unchanged(csvPath, fileHash) {
		imported := cache.ImportedFiles[csvPath]
		appLogger.Info("Training corpus unchanged, skipping import",
			zap.String("path", csvPath),
			zap.Int("rows", imported.Rows),
			zap.Time("imported_at", imported.ImportedAt),
		)
		return nil
	}

	records, err := repository.NewCorpusCSV(csvPath).LoadCorpus(ctx)
	if err != nil {
		return fmt.Errorf("failed to read training corpus: %w", err)
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := repository.NewTrainingRepository(db, appLogger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, records); err != nil {
		return err
	}

	cache.record(csvPath, fileHash, len(records), time.Now())
	if err := saveCache(cacheFile, cache); err != nil {
		appLogger.Warn("Failed to save cache", zap.Error(err))
	}

	appLogger.Info("Training corpus imported",
		zap.String("path", csvPath),
		zap.Int("rows", len(records)),
	)
	return nil
}
