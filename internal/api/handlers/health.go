package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck is an extra dependency consulted by /readyz, such as the
// sweep scheduler.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// ReadinessResponse is the /readyz body. Failing lists the dependencies that
// are not ready.
type ReadinessResponse struct {
	Status  string   `json:"status"`
	Failing []string `json:"failing,omitempty"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	store  Pinger
	checks []ReadinessCheck
}

// NewHealthHandler creates a HealthHandler. The store is always checked;
// checks are consulted after it, in order.
func NewHealthHandler(s Pinger, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{store: s, checks: checks}
}

// Healthz returns 200 while the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when the database and every registered check are ready,
// 503 with the failing names otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()

	var failing []string
	if err := h.store.Ping(ctx); err != nil {
		failing = append(failing, "database")
	}
	for _, rc := range h.checks {
		if err := rc.Check(ctx); err != nil {
			failing = append(failing, rc.Name)
		}
	}

	if len(failing) > 0 {
		return c.JSON(http.StatusServiceUnavailable, ReadinessResponse{Status: "unavailable", Failing: failing})
	}
	return c.JSON(http.StatusOK, ReadinessResponse{Status: "ready"})
}
