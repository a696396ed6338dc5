package api

// OptimizeRequest is the request body for POST /api/optimize.
type OptimizeRequest struct {
	SeedPrompt string `json:"seedPrompt"`
}

// OptimizeResponse is the success body for POST /api/optimize.
type OptimizeResponse struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VocabularyResponse describes the active enhancer.
type VocabularyResponse struct {
	Variant    string   `json:"variant"`
	Categories []string `json:"categories"`
}
