package domain

type SuccessResponse struct {
	Message string `json:"message"`
}

// RecommendationResponse mirrors the shape the frontend already consumes:
// {"recommendations": [...]}.
type RecommendationResponse struct {
	Recommendations interface{} `json:"recommendations"`
}
