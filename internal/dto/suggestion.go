package dto

type SuggestionRequest struct {
	Balance *float64 `json:"balance"`
}

type SuggestionResponse struct {
	Balance     float64  `json:"balance"`
	Suggestions []string `json:"suggestions"`
}
