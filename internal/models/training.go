package models

import (
	"github.com/google/uuid"
)

// TrainingRecord is one labeled question of the training corpus.
type TrainingRecord struct {
	ID       uuid.UUID `db:"id"`
	Position int       `db:"position"` // row order of the source file
	Text     string    `db:"text"`
	Label    string    `db:"label"`
	Answer   string    `db:"answer"` // curated answer, empty when absent
}

// HasAnswer reports whether the record carries a curated answer.
func (r TrainingRecord) HasAnswer() bool {
	return r.Answer != ""
}
