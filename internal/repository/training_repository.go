package repository

import (
	"context"
	"fmt"

	"cyber-advisor/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const trainingTable = "training_questions"

const createTrainingTable = `CREATE TABLE IF NOT EXISTS training_questions (
	id UUID PRIMARY KEY,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	label TEXT NOT NULL,
	answer TEXT NOT NULL DEFAULT ''
)`

// TrainingRepository stores the labeled training corpus in PostgreSQL.
type TrainingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTrainingRepository(db *pgxpool.Pool, logger *zap.Logger) *TrainingRepository {
	return &TrainingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TrainingRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createTrainingTable); err != nil {
		return fmt.Errorf("failed to create %s: %w", trainingTable, err)
	}
	return nil
}

// LoadCorpus returns every record in source order.
func (r *TrainingRepository) LoadCorpus(ctx context.Context) ([]models.TrainingRecord, error) {
	sql, args, err := listTrainingQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query training corpus: %w", err)
	}
	defer rows.Close()

	var records []models.TrainingRecord
	for rows.Next() {
		var rec models.TrainingRecord
		if err := rows.Scan(&rec.ID, &rec.Position, &rec.Text, &rec.Label, &rec.Answer); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Training corpus loaded from database", zap.Int("records", len(records)))
	return records, nil
}

// ReplaceAll swaps the stored corpus for records inside one transaction.
func (r *TrainingRepository) ReplaceAll(ctx context.Context, records []models.TrainingRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM "+trainingTable); err != nil {
		return fmt.Errorf("failed to clear %s: %w", trainingTable, err)
	}

	batch := &pgx.Batch{}
	for i := range records {
		if records[i].ID == uuid.Nil {
			records[i].ID = uuid.New()
		}
		sql, args, err := insertTrainingQuery(records[i]).ToSql()
		if err != nil {
			return err
		}
		batch.Queue(sql, args...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert training records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit training corpus: %w", err)
	}

	r.logger.Info("Training corpus replaced", zap.Int("records", len(records)))
	return nil
}

func listTrainingQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "position", "text", "label", "answer").
		From(trainingTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func insertTrainingQuery(rec models.TrainingRecord) squirrel.InsertBuilder {
	return squirrel.Insert(trainingTable).
		Columns("id", "position", "text", "label", "answer").
		Values(rec.ID, rec.Position, rec.Text, rec.Label, rec.Answer).
		PlaceholderFormat(squirrel.Dollar)
}
