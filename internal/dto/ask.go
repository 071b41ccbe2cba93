package dto

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Category string   `json:"category"`
	Advice   string   `json:"advice"`
	Sources  []string `json:"sources"`
}

type PredictResponse struct {
	Category string `json:"category"`
}
