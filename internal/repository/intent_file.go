package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cyber-advisor/internal/models"
)

// IntentFile reads intent patterns and advice from a JSON object of
// category -> [{"patterns": [...], "advice": "..."}].
type IntentFile struct {
	path string
}

func NewIntentFile(path string) *IntentFile {
	return &IntentFile{path: path}
}

func (f *IntentFile) LoadIntents() (models.IntentTable, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to read intents: %w", err)
	}

	if err := validateDocument(intentSchema, data); err != nil {
		return nil, fmt.Errorf("failed to parse intents %s: %w", f.path, err)
	}

	var raw map[string][]models.IntentEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse intents %s: %w", f.path, err)
	}

	table := make(models.IntentTable, len(raw))
	for category, entries := range raw {
		table[models.Category(category)] = entries
	}
	return table, nil
}
