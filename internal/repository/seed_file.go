package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"cyber-advisor/internal/models"
)

// SeedFile reads curated seed answers from a JSON object of question -> answer.
type SeedFile struct {
	path string
}

func NewSeedFile(path string) *SeedFile {
	return &SeedFile{path: path}
}

// LoadSeeds returns the pairs in file order, duplicates included, so that
// callers can apply last-write-wins after their own key normalization.
func (f *SeedFile) LoadSeeds() ([]models.SeedAnswer, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to read seed answers: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("failed to parse seed answers %s: file is empty", f.path)
	}

	if err := validateDocument(seedSchema, data); err != nil {
		return nil, fmt.Errorf("failed to parse seed answers %s: %w", f.path, err)
	}
	seeds, err := decodeOrderedSeeds(json.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed answers %s: %w", f.path, err)
	}
	return seeds, nil
}

func decodeOrderedSeeds(dec *json.Decoder) ([]models.SeedAnswer, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var seeds []models.SeedAnswer
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		question, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", keyTok)
		}

		var answer string
		if err := dec.Decode(&answer); err != nil {
			return nil, fmt.Errorf("answer for %q: %w", question, err)
		}
		seeds = append(seeds, models.SeedAnswer{Question: question, Answer: answer})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return seeds, nil
}
