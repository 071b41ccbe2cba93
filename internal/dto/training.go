package dto

type TrainingStatsResponse struct {
	Total        int            `json:"total"`
	Distribution map[string]int `json:"distribution"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Seeds  int    `json:"seeds"`
	Corpus int    `json:"corpus"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
