package api

import (
	domain "github.com/example/task-management-api/domain/task"
)

// ErrorResponse represents an error response. Details carries per-field
// validation failures when present.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// HealthResponse reports overall service health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// RootResponse is the welcome payload served at the root path.
type RootResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Documentation map[string]string `json:"documentation"`
	Endpoints     map[string]string `json:"endpoints"`
}
