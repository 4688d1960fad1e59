package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tablewatch/internal/api/handlers"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

type mockSystemStateProvider struct {
	state *domain.SystemState
	err   error
}

func (m *mockSystemStateProvider) GetSystemState(_ context.Context) (*domain.SystemState, error) {
	return m.state, m.err
}

// fakeSweepStatus reports a fixed scheduler state.
type fakeSweepStatus struct {
	next    time.Time
	running bool
}

func (f fakeSweepStatus) NextSweep() time.Time  { return f.next }
func (f fakeSweepStatus) SweepInProgress() bool { return f.running }

func TestGetSystemState(t *testing.T) {
	t.Parallel()

	next := time.Date(2026, 2, 1, 18, 15, 0, 0, time.UTC)

	tests := []struct {
		name         string
		sweep        handlers.SweepStatus
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "without scheduler",
			sweep:        nil,
			wantContains: []string{`"sweep_in_progress":false`},
			wantAbsent:   []string{"next_sweep_at"},
		},
		{
			name:  "scheduler idle",
			sweep: fakeSweepStatus{next: next},
			wantContains: []string{
				`"next_sweep_at":"2026-02-01T18:15:00Z"`,
				`"sweep_in_progress":false`,
			},
		},
		{
			name:         "scheduler stopped mid-sweep",
			sweep:        fakeSweepStatus{running: true},
			wantContains: []string{`"sweep_in_progress":true`},
			wantAbsent:   []string{"next_sweep_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := &domain.SystemState{
				Restaurants:   12,
				Neighborhoods: []string{"West Village", "Williamsburg"},
				Watches:       5,
				ActiveWatches: 3,
			}
			h := handlers.NewSystemStateHandler(&mockSystemStateProvider{state: state}, tt.sweep)

			_, api := humatest.New(t)
			handlers.RegisterSystemStateRoutes(api, h)

			resp := api.Get("/api/v1/system/state")
			require.Equal(t, http.StatusOK, resp.Code)

			body := resp.Body.String()
			assert.Contains(t, body, `"restaurants":12`)
			assert.Contains(t, body, `"active_watches":3`)
			assert.Contains(t, body, `"Williamsburg"`)
			for _, want := range tt.wantContains {
				assert.Contains(t, body, want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, body, absent)
			}
		})
	}
}

func TestGetSystemState_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewSystemStateHandler(
		&mockSystemStateProvider{err: errors.New("db error")},
		fakeSweepStatus{running: true},
	)

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
