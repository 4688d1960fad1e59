// Package handlers implements the tablewatch HTTP API. Health checks are
// plain echo handlers; everything under /api/v1 is a huma operation.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
