package dto

type PredictRequest struct {
	Description string `json:"description"`
}

// PredictResponse mirrors what the client expects from the service matcher.
// Message is only set when the matched service is not ready.
type PredictResponse struct {
	InputDescription   string  `json:"input_description"`
	MatchedDescription string  `json:"matched_description"`
	CTA                string  `json:"cta"`
	SimilarityScore    float64 `json:"similarity_score"`
	Deeplink           string  `json:"deeplink"`
	Status             string  `json:"status"`
	Message            string  `json:"message,omitempty"`
}

type HomeResponse struct {
	Message string `json:"message"`
}
