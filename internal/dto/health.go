package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

// IndexResponse describes the service at the root route
type IndexResponse struct {
	Service string `json:"service"`
	Docs    string `json:"docs"`
	Version string `json:"version"`
}
