package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tablewatch/internal/store"
	"github.com/donaldgifford/tablewatch/pkg/slottime"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// WatchHandler handles watch target CRUD operations.
type WatchHandler struct {
	store store.Store
}

// NewWatchHandler creates a new WatchHandler.
func NewWatchHandler(s store.Store) *WatchHandler {
	return &WatchHandler{store: s}
}

// --- Input/Output types ---

// ListWatchesInput is the input for listing watches.
type ListWatchesInput struct {
	Active bool `query:"active" doc:"Only active watches"`
}

// ListWatchesOutput is the response for listing watches.
type ListWatchesOutput struct {
	Body []domain.WatchTarget
}

// WatchIDInput identifies a single watch.
type WatchIDInput struct {
	ID string `path:"id" doc:"Watch UUID"`
}

// WatchOutput is the response for a single watch.
type WatchOutput struct {
	Body domain.WatchTarget
}

// WatchBody is the writable part of a watch target.
type WatchBody struct {
	RestaurantID   string   `json:"restaurant_id"              minLength:"1"`
	PartySize      int      `json:"party_size"                 minimum:"1" maximum:"20"`
	DateRangeStart string   `json:"date_range_start,omitempty" doc:"YYYY-MM-DD; set together with date_range_end"`
	DateRangeEnd   string   `json:"date_range_end,omitempty"   doc:"YYYY-MM-DD; set together with date_range_start"`
	PreferredTimes []string `json:"preferred_times,omitempty"  doc:"Accepted times, e.g. 19:00 or 7:30 PM. Empty accepts any time."`
	NotifyEmail    string   `json:"notify_email,omitempty"     format:"email"`
	NotifySMS      string   `json:"notify_sms,omitempty"       pattern:"^\\+[1-9][0-9]{6,14}$" doc:"E.164 phone number"`
	Active         *bool    `json:"active,omitempty"           doc:"Defaults to true"`
}

// toWatch validates the body and normalizes preferred times to HH:MM.
func (b *WatchBody) toWatch() (*domain.WatchTarget, error) {
	if (b.DateRangeStart == "") != (b.DateRangeEnd == "") {
		return nil, errors.New("date_range_start and date_range_end must be set together")
	}
	if b.DateRangeStart != "" {
		start, err := time.Parse(domain.DateLayout, b.DateRangeStart)
		if err != nil {
			return nil, fmt.Errorf("invalid date_range_start %q", b.DateRangeStart)
		}
		end, err := time.Parse(domain.DateLayout, b.DateRangeEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid date_range_end %q", b.DateRangeEnd)
		}
		if end.Before(start) {
			return nil, errors.New("date_range_end is before date_range_start")
		}
	}

	times := make([]string, 0, len(b.PreferredTimes))
	for _, raw := range b.PreferredTimes {
		t, err := slottime.ParseTime(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid preferred time %q", raw)
		}
		times = append(times, t)
	}
	slices.Sort(times)
	times = slices.Compact(times)

	return &domain.WatchTarget{
		RestaurantID:   b.RestaurantID,
		PartySize:      b.PartySize,
		DateRangeStart: b.DateRangeStart,
		DateRangeEnd:   b.DateRangeEnd,
		PreferredTimes: times,
		NotifyEmail:    b.NotifyEmail,
		NotifySMS:      b.NotifySMS,
		Active:         b.Active == nil || *b.Active,
	}, nil
}

// CreateWatchInput is the input for creating a watch.
type CreateWatchInput struct {
	Body WatchBody
}

// UpdateWatchInput is the input for replacing a watch.
type UpdateWatchInput struct {
	ID   string `path:"id" doc:"Watch UUID"`
	Body WatchBody
}

// SetActiveInput is the input for activating or deactivating a watch.
type SetActiveInput struct {
	ID   string `path:"id" doc:"Watch UUID"`
	Body struct {
		Active bool `json:"active" doc:"Whether the watch is checked by sweeps"`
	}
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// --- Handlers ---

// ListWatches returns all watches, or only active ones.
func (h *WatchHandler) ListWatches(
	ctx context.Context,
	input *ListWatchesInput,
) (*ListWatchesOutput, error) {
	watches, err := h.store.ListWatches(ctx, input.Active)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing watches: " + err.Error())
	}

	if watches == nil {
		watches = []domain.WatchTarget{}
	}
	return &ListWatchesOutput{Body: watches}, nil
}

// GetWatch returns a single watch by ID.
func (h *WatchHandler) GetWatch(ctx context.Context, input *WatchIDInput) (*WatchOutput, error) {
	w, err := h.store.GetWatch(ctx, input.ID)
	if err != nil {
		return nil, storeError("watch", err)
	}
	return &WatchOutput{Body: *w}, nil
}

// CreateWatch stores a new watch for an existing restaurant.
func (h *WatchHandler) CreateWatch(ctx context.Context, input *CreateWatchInput) (*WatchOutput, error) {
	w, err := input.Body.toWatch()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.checkRestaurant(ctx, w.RestaurantID); err != nil {
		return nil, err
	}

	if err := h.store.CreateWatch(ctx, w); err != nil {
		return nil, huma.Error500InternalServerError("creating watch: " + err.Error())
	}
	return &WatchOutput{Body: *w}, nil
}

// UpdateWatch replaces a watch's fields.
func (h *WatchHandler) UpdateWatch(ctx context.Context, input *UpdateWatchInput) (*WatchOutput, error) {
	w, err := input.Body.toWatch()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.checkRestaurant(ctx, w.RestaurantID); err != nil {
		return nil, err
	}

	w.ID = input.ID
	if err := h.store.UpdateWatch(ctx, w); err != nil {
		return nil, storeError("watch", err)
	}
	return &WatchOutput{Body: *w}, nil
}

// SetActive activates or deactivates a watch.
func (h *WatchHandler) SetActive(ctx context.Context, input *SetActiveInput) (*StatusOutput, error) {
	if err := h.store.SetWatchActive(ctx, input.ID, input.Body.Active); err != nil {
		return nil, storeError("watch", err)
	}
	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// DeleteWatch removes a watch.
func (h *WatchHandler) DeleteWatch(ctx context.Context, input *WatchIDInput) (*struct{}, error) {
	if err := h.store.DeleteWatch(ctx, input.ID); err != nil {
		return nil, storeError("watch", err)
	}
	return nil, nil
}

func (h *WatchHandler) checkRestaurant(ctx context.Context, id string) error {
	if _, err := h.store.GetRestaurant(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return huma.Error422UnprocessableEntity("restaurant " + id + " does not exist")
		}
		return huma.Error500InternalServerError("loading restaurant: " + err.Error())
	}
	return nil
}

// RegisterWatchRoutes registers watch endpoints with the Huma API.
func RegisterWatchRoutes(api huma.API, h *WatchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-watches",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches",
		Summary:     "List watches",
		Description: "Returns all watches, optionally only the active ones.",
		Tags:        []string{"watches"},
	}, h.ListWatches)

	huma.Register(api, huma.Operation{
		OperationID:   "create-watch",
		Method:        http.MethodPost,
		Path:          "/api/v1/watches",
		Summary:       "Create a watch",
		Description:   "Creates a watch target. Preferred times are normalized to 24-hour HH:MM.",
		Tags:          []string{"watches"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateWatch)

	huma.Register(api, huma.Operation{
		OperationID: "get-watch",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches/{id}",
		Summary:     "Get a watch by ID",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetWatch)

	huma.Register(api, huma.Operation{
		OperationID: "update-watch",
		Method:      http.MethodPut,
		Path:        "/api/v1/watches/{id}",
		Summary:     "Update a watch",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateWatch)

	huma.Register(api, huma.Operation{
		OperationID: "set-watch-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/watches/{id}/active",
		Summary:     "Activate or deactivate a watch",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-watch",
		Method:        http.MethodDelete,
		Path:          "/api/v1/watches/{id}",
		Summary:       "Delete a watch",
		Tags:          []string{"watches"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteWatch)
}
