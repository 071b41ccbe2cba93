package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cyber-advisor/internal/models"
)

// CorpusCSV reads the labeled training corpus from a CSV file with a header
// row naming at least the text and label columns; answer is optional.
type CorpusCSV struct {
	path string
}

func NewCorpusCSV(path string) *CorpusCSV {
	return &CorpusCSV{path: path}
}

func (c *CorpusCSV) LoadCorpus(ctx context.Context) ([]models.TrainingRecord, error) {
	file, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, c.path)
		}
		return nil, fmt.Errorf("failed to open training corpus: %w", err)
	}
	defer file.Close()

	records, err := ReadCorpus(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read training corpus %s: %w", c.path, err)
	}
	return records, nil
}

// ReadCorpus parses corpus rows from r.
func ReadCorpus(ctx context.Context, r io.Reader) ([]models.TrainingRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}

	textCol, labelCol, answerCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "text":
			textCol = i
		case "label":
			labelCol = i
		case "answer":
			answerCol = i
		}
	}
	if textCol < 0 || labelCol < 0 {
		return nil, errors.New("corpus must have 'text' and 'label' columns")
	}

	var records []models.TrainingRecord
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if textCol >= len(row) || labelCol >= len(row) {
			return nil, fmt.Errorf("line %d: expected at least %d fields", line, max(textCol, labelCol)+1)
		}

		record := models.TrainingRecord{
			Position: len(records),
			Text:     row[textCol],
			Label:    strings.TrimSpace(row[labelCol]),
		}
		if answerCol >= 0 && answerCol < len(row) {
			record.Answer = strings.TrimSpace(row[answerCol])
		}
		records = append(records, record)
	}
	return records, nil
}
