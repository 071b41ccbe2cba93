package models

// SeedAnswer is a curated question/answer pair used for exact matching.
type SeedAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
