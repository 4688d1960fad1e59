package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tablewatch/internal/engine"
)

// Sweeper runs an on-demand sweep.
type Sweeper interface {
	TriggerSweep(ctx context.Context) (engine.SweepResult, error)
}

// SweepHandler handles manual sweep requests.
type SweepHandler struct {
	sweeper Sweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(s Sweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

// SweepOutput is the response body for the sweep endpoint.
type SweepOutput struct {
	Body struct {
		Status   string         `json:"status"    example:"sweep completed" doc:"Sweep status"`
		Targets  int            `json:"targets"   doc:"Watch targets checked"`
		NewSlots int            `json:"new_slots" doc:"Slots not seen within the dedup window"`
		Errors   int            `json:"errors"    doc:"Targets that failed"`
		Outcomes map[string]int `json:"outcomes"  doc:"Targets per outcome"`
	}
}

// Sweep runs one sweep and waits for it to finish.
func (h *SweepHandler) Sweep(ctx context.Context, _ *struct{}) (*SweepOutput, error) {
	res, err := h.sweeper.TriggerSweep(ctx)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrSweepInProgress):
			return nil, huma.Error409Conflict("a sweep is already running")
		case errors.Is(err, engine.ErrSweepLocked):
			return nil, huma.Error409Conflict("a sweep is running on another instance")
		}
		return nil, huma.Error500InternalServerError("sweep failed: " + err.Error())
	}

	resp := &SweepOutput{}
	resp.Body.Status = "sweep completed"
	resp.Body.Targets = res.Targets
	resp.Body.NewSlots = res.NewSlots
	resp.Body.Errors = res.Errors
	resp.Body.Outcomes = make(map[string]int, len(res.Outcomes))
	for o, n := range res.Outcomes {
		resp.Body.Outcomes[o.String()] = n
	}
	return resp, nil
}

// RegisterSweepRoutes registers the sweep trigger with the Huma API.
func RegisterSweepRoutes(api huma.API, h *SweepHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sweep",
		Method:      http.MethodPost,
		Path:        "/api/v1/sweep",
		Summary:     "Trigger a sweep",
		Description: "Checks every active watch target once: scrape, filter, dedup, record and notify. " +
			"Returns 409 when a sweep is already running here or on another instance.",
		Tags:   []string{"sweep"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Sweep)
}
