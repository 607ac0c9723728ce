package api

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ResultResponse wraps every rendered report
type ResultResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is returned for any failed query
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
