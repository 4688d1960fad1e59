package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// HistoryProvider defines the store methods behind check and notification
// history.
type HistoryProvider interface {
	ListChecks(ctx context.Context, restaurantID string, limit int) ([]domain.CheckRecord, error)
	ListNotifications(ctx context.Context, restaurantID string, limit int) ([]domain.NotificationRecord, error)
}

// HistoryHandler serves check and notification history.
type HistoryHandler struct {
	store HistoryProvider
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s HistoryProvider) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// ListChecksInput selects a restaurant's checks.
type ListChecksInput struct {
	ID    string `path:"id"    doc:"Restaurant UUID"`
	Limit int    `query:"limit" doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
}

// ListChecksOutput is the response for listing checks.
type ListChecksOutput struct {
	Body []domain.CheckRecord
}

// ListNotificationsInput filters notification history.
type ListNotificationsInput struct {
	RestaurantID string `query:"restaurant_id" doc:"Only notifications for this restaurant"`
	Limit        int    `query:"limit"         doc:"Number of results (default 50)"      minimum:"0" maximum:"500"`
}

// ListNotificationsOutput is the response for listing notifications.
type ListNotificationsOutput struct {
	Body []domain.NotificationRecord
}

// ListChecks returns a restaurant's check records, newest first.
func (h *HistoryHandler) ListChecks(ctx context.Context, input *ListChecksInput) (*ListChecksOutput, error) {
	checks, err := h.store.ListChecks(ctx, input.ID, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing checks failed: " + err.Error())
	}
	if checks == nil {
		checks = []domain.CheckRecord{}
	}
	return &ListChecksOutput{Body: checks}, nil
}

// ListNotifications returns dispatch attempts, newest first.
func (h *HistoryHandler) ListNotifications(
	ctx context.Context,
	input *ListNotificationsInput,
) (*ListNotificationsOutput, error) {
	records, err := h.store.ListNotifications(ctx, input.RestaurantID, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing notifications failed: " + err.Error())
	}
	if records == nil {
		records = []domain.NotificationRecord{}
	}
	return &ListNotificationsOutput{Body: records}, nil
}

// RegisterHistoryRoutes registers check and notification history endpoints.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-checks",
		Method:      http.MethodGet,
		Path:        "/api/v1/restaurants/{id}/checks",
		Summary:     "List a restaurant's checks",
		Description: "Returns the slot observations recorded for a restaurant with their dispatch status.",
		Tags:        []string{"history"},
	}, h.ListChecks)

	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/api/v1/notifications",
		Summary:     "List notifications",
		Description: "Returns notification attempts across all channels, optionally for one restaurant.",
		Tags:        []string{"history"},
	}, h.ListNotifications)
}
