package client

import (
	"context"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// SweepResult summarizes a manual sweep.
type SweepResult struct {
	Status   string         `json:"status"`
	Targets  int            `json:"targets"`
	NewSlots int            `json:"new_slots"`
	Errors   int            `json:"errors"`
	Outcomes map[string]int `json:"outcomes"`
}

// TriggerSweep runs a sweep on the server and waits for it to finish. A
// sweep already in progress is reported as an APIError with status 409.
func (c *Client) TriggerSweep(ctx context.Context) (*SweepResult, error) {
	var res SweepResult
	if err := c.post(ctx, "/api/v1/sweep", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SystemState returns aggregate counts.
func (c *Client) SystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
