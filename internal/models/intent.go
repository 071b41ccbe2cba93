package models

// IntentEntry groups example question patterns that share one advice text.
type IntentEntry struct {
	Patterns []string `json:"patterns"`
	Advice   string   `json:"advice"`
}

// IntentTable maps a category to its intents in file order.
type IntentTable map[Category][]IntentEntry
