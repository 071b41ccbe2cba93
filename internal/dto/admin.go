package dto

type ReloadSeedResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

type ReloadAdviceResponse struct {
	OK         bool     `json:"ok"`
	Categories []string `json:"categories"`
}
