package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// SystemStateProvider returns aggregate counts.
type SystemStateProvider interface {
	GetSystemState(ctx context.Context) (*domain.SystemState, error)
}

// SweepStatus reports the live state of this process's sweep scheduler.
type SweepStatus interface {
	NextSweep() time.Time
	SweepInProgress() bool
}

// SystemStateHandler handles GET /api/v1/system/state.
type SystemStateHandler struct {
	store SystemStateProvider
	sweep SweepStatus
}

// NewSystemStateHandler creates a SystemStateHandler. sweep may be nil, in
// which case only stored counts are reported.
func NewSystemStateHandler(s SystemStateProvider, sweep SweepStatus) *SystemStateHandler {
	return &SystemStateHandler{store: s, sweep: sweep}
}

// SystemStateOutput is the response for GET /api/v1/system/state.
type SystemStateOutput struct {
	Body *domain.SystemState
}

// GetSystemState merges the stored counts with the scheduler's next sweep
// time and whether a sweep is running.
func (h *SystemStateHandler) GetSystemState(
	ctx context.Context,
	_ *struct{},
) (*SystemStateOutput, error) {
	state, err := h.store.GetSystemState(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get system state")
	}

	if h.sweep != nil {
		if next := h.sweep.NextSweep(); !next.IsZero() {
			state.NextSweepAt = &next
		}
		state.SweepInProgress = h.sweep.SweepInProgress()
	}
	return &SystemStateOutput{Body: state}, nil
}

// RegisterSystemStateRoutes registers GET /api/v1/system/state.
func RegisterSystemStateRoutes(api huma.API, h *SystemStateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-system-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/system/state",
		Summary:     "Get system state",
		Description: "Returns restaurant, watch, check and notification counts, the known neighborhoods " +
			"and cuisines, and when the next sweep runs.",
		Tags:   []string{"system"},
		Errors: []int{http.StatusInternalServerError},
	}, h.GetSystemState)
}
