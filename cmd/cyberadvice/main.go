package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cyber-advisor/internal/api"
	"cyber-advisor/internal/api/handlers"
	"cyber-advisor/internal/classifier"
	"cyber-advisor/internal/models"
	"cyber-advisor/internal/repository"
	"cyber-advisor/internal/service"
	"cyber-advisor/pkg/cache"
	"cyber-advisor/pkg/config"
	"cyber-advisor/pkg/logger"
	"cyber-advisor/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// @title Cyber Advisor API
// @version 1.0
// @description Arabic cyber-security advice service: classifies a question and returns curated advice

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting cyber advisor service")

	ctx := context.Background()

	clf := loadClassifier(cfg.Data.ModelPath, appLogger)

	// Reloadable tables
	seeds := service.NewSeedService(repository.NewSeedFile(cfg.Data.SeedAnswersPath), appLogger)
	if _, err := seeds.Load(); err != nil {
		appLogger.Warn("Seed answers unavailable", zap.Error(err))
	}
	intents := service.NewIntentService(repository.NewIntentFile(cfg.Data.AdvicePath), cfg.Retrieval, appLogger)
	if _, err := intents.Load(); err != nil {
		appLogger.Warn("Advice intents unavailable", zap.Error(err))
	}

	// Training corpus
	corpusSource, db := openCorpusSource(ctx, cfg, appLogger)
	if db != nil {
		defer db.Close()
	}
	corpus := service.LoadCorpusService(ctx, corpusSource, cfg.Retrieval, appLogger)

	answerService := service.NewAnswerService(clf, seeds, corpus, intents, service.DefaultAdvice(), appLogger)

	// Optional answer cache
	var answerCache *service.AnswerCache
	if cfg.Cache.Enabled() {
		client, err := cache.NewClient(ctx, cfg.Cache, appLogger)
		if err != nil {
			appLogger.Warn("Answer cache unavailable, continuing without it", zap.Error(err))
		} else {
			defer client.Close()
			answerCache = service.NewAnswerCache(client, cfg.Cache.TTL, appLogger)
		}
	}

	if cfg.Data.Watch {
		watcher, err := watchTables(cfg.Data, answerService, appLogger)
		if err != nil {
			appLogger.Warn("File watching disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	// Initialize handlers
	askHandler := handlers.NewAskHandler(answerService, answerCache, appLogger)
	adminHandler := handlers.NewAdminHandler(answerService, appLogger)
	trainingHandler := handlers.NewTrainingHandler(answerService, appLogger)

	// Setup router
	app := api.SetupRouter(askHandler, adminHandler, trainingHandler, cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// loadClassifier falls back to a constant general prediction when no
// trained model is available.
func loadClassifier(path string, logger *zap.Logger) classifier.Classifier {
	model, err := classifier.Load(path)
	if err != nil {
		if errors.Is(err, classifier.ErrModelNotFound) {
			logger.Warn("Classifier model not found, every question is classified as general",
				zap.String("path", path))
		} else {
			logger.Error("Classifier model unusable, every question is classified as general",
				zap.String("path", path), zap.Error(err))
		}
		return classifier.Static(models.CategoryGeneral)
	}

	classes := model.Classes()
	for _, class := range classes {
		if !models.Category(class).IsKnown() {
			logger.Warn("Classifier predicts a category without built-in advice, general advice is used for it",
				zap.String("category", class))
		}
	}

	logger.Info("Classifier model loaded",
		zap.String("path", path), zap.Strings("classes", classes))
	return model
}

// openCorpusSource returns the configured corpus source. The pool is
// returned so that the caller can close it.
func openCorpusSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.CorpusSource, *pgxpool.Pool) {
	if cfg.Data.CorpusSource != config.CorpusSourcePostgres {
		return repository.NewCorpusCSV(cfg.Data.TrainingCSV), nil
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Warn("Database unavailable, reading training corpus from CSV", zap.Error(err))
		return repository.NewCorpusCSV(cfg.Data.TrainingCSV), nil
	}
	return repository.NewTrainingRepository(db, logger), db
}

// watchTables reloads the seed and intent tables when their files change.
func watchTables(data config.DataConfig, answerService *service.AnswerService, logger *zap.Logger) (*service.TableWatcher, error) {
	watcher, err := service.NewTableWatcher(250*time.Millisecond, logger)
	if err != nil {
		return nil, err
	}

	if err := watcher.Watch(data.SeedAnswersPath, func() error {
		_, err := answerService.ReloadSeeds()
		return err
	}); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	if err := watcher.Watch(data.AdvicePath, func() error {
		_, err := answerService.ReloadIntents()
		return err
	}); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}
