package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/tablewatch/internal/store"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// RestaurantHandler handles restaurant endpoints.
type RestaurantHandler struct {
	store store.Store
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(s store.Store) *RestaurantHandler {
	return &RestaurantHandler{store: s}
}

// --- Input/Output types ---

// ListRestaurantsInput is the input for listing restaurants with optional filters.
type ListRestaurantsInput struct {
	Search        string `query:"q"              doc:"Case-insensitive match on name, neighborhood or cuisine"`
	Neighborhood  string `query:"neighborhood"   doc:"Filter by neighborhood"`
	Cuisine       string `query:"cuisine"        doc:"Filter by cuisine"`
	Visited       string `query:"visited"        doc:"Filter by visited flag"                                   enum:"true,false,"`
	MonitoredOnly bool   `query:"monitored"      doc:"Only restaurants with monitoring enabled"`
	Limit         int    `query:"limit"          doc:"Number of results (default 50)"                           minimum:"0" maximum:"500"`
	Offset        int    `query:"offset"         doc:"Pagination offset"                                        minimum:"0"`
	OrderBy       string `query:"order_by"       doc:"Sort field"                                               enum:"name,priority,created_at,"`
}

// ListRestaurantsOutput is the response for listing restaurants.
type ListRestaurantsOutput struct {
	Body struct {
		Restaurants []domain.Restaurant `json:"restaurants"`
		Total       int                 `json:"total"`
		Limit       int                 `json:"limit"`
		Offset      int                 `json:"offset"`
	}
}

// RestaurantBody is the writable part of a restaurant. Booking targets are
// derived from the booking URLs.
type RestaurantBody struct {
	Name           string             `json:"name"                      minLength:"1" maxLength:"200"`
	Neighborhood   string             `json:"neighborhood,omitempty"`
	Cuisine        string             `json:"cuisine,omitempty"`
	Priority       string             `json:"priority,omitempty"        enum:"normal,high,urgent"`
	Visited        bool               `json:"visited,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	MonitorEnabled *bool              `json:"monitor_enabled,omitempty" doc:"Defaults to true"`
	BookingURLs    domain.BookingURLs `json:"booking_urls,omitempty"`
}

func (b *RestaurantBody) toRestaurant() *domain.Restaurant {
	r := &domain.Restaurant{
		Name:           strings.TrimSpace(b.Name),
		Neighborhood:   strings.TrimSpace(b.Neighborhood),
		Cuisine:        strings.TrimSpace(b.Cuisine),
		Priority:       domain.Priority(b.Priority),
		Visited:        b.Visited,
		Notes:          b.Notes,
		MonitorEnabled: b.MonitorEnabled == nil || *b.MonitorEnabled,
		BookingURLs:    b.BookingURLs,
	}
	if r.Priority == "" {
		r.Priority = domain.PriorityNormal
	}
	r.Primary, r.Secondary = domain.ResolveBookingTargets(r.Name, r.BookingURLs)
	return r
}

// CreateRestaurantInput is the input for creating a restaurant.
type CreateRestaurantInput struct {
	Body RestaurantBody
}

// UpdateRestaurantInput is the input for replacing a restaurant.
type UpdateRestaurantInput struct {
	ID   string `path:"id" doc:"Restaurant UUID"`
	Body RestaurantBody
}

// GetRestaurantInput is the input for getting a single restaurant.
type GetRestaurantInput struct {
	ID string `path:"id" doc:"Restaurant UUID"`
}

// RestaurantOutput is the response for a single restaurant.
type RestaurantOutput struct {
	Body domain.Restaurant
}

// --- Handlers ---

// ListRestaurants returns restaurants matching the filters.
func (h *RestaurantHandler) ListRestaurants(
	ctx context.Context,
	input *ListRestaurantsInput,
) (*ListRestaurantsOutput, error) {
	q := &store.RestaurantQuery{
		MonitoredOnly: input.MonitoredOnly,
		Limit:         input.Limit,
		Offset:        input.Offset,
		OrderBy:       input.OrderBy,
	}

	if input.Search != "" {
		q.Search = &input.Search
	}
	if input.Neighborhood != "" {
		q.Neighborhood = &input.Neighborhood
	}
	if input.Cuisine != "" {
		q.Cuisine = &input.Cuisine
	}
	if input.Visited != "" {
		visited := input.Visited == "true"
		q.Visited = &visited
	}

	restaurants, total, err := h.store.ListRestaurants(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing restaurants failed: " + err.Error())
	}

	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}

	resp := &ListRestaurantsOutput{}
	resp.Body.Restaurants = restaurants
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetRestaurant returns a single restaurant by ID.
func (h *RestaurantHandler) GetRestaurant(
	ctx context.Context,
	input *GetRestaurantInput,
) (*RestaurantOutput, error) {
	r, err := h.store.GetRestaurant(ctx, input.ID)
	if err != nil {
		return nil, storeError("restaurant", err)
	}
	return &RestaurantOutput{Body: *r}, nil
}

// CreateRestaurant stores a new restaurant.
func (h *RestaurantHandler) CreateRestaurant(
	ctx context.Context,
	input *CreateRestaurantInput,
) (*RestaurantOutput, error) {
	r := input.Body.toRestaurant()
	if r.Name == "" {
		return nil, huma.Error422UnprocessableEntity("name must not be blank")
	}

	if err := h.store.CreateRestaurant(ctx, r); err != nil {
		return nil, huma.Error500InternalServerError("creating restaurant failed: " + err.Error())
	}
	return &RestaurantOutput{Body: *r}, nil
}

// UpdateRestaurant replaces a restaurant's fields and re-derives its booking
// targets.
func (h *RestaurantHandler) UpdateRestaurant(
	ctx context.Context,
	input *UpdateRestaurantInput,
) (*RestaurantOutput, error) {
	r := input.Body.toRestaurant()
	if r.Name == "" {
		return nil, huma.Error422UnprocessableEntity("name must not be blank")
	}
	r.ID = input.ID

	if err := h.store.UpdateRestaurant(ctx, r); err != nil {
		return nil, storeError("restaurant", err)
	}
	return &RestaurantOutput{Body: *r}, nil
}

// storeError maps a store lookup failure to 404 or 500.
func storeError(kind string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound(kind + " not found")
	}
	return huma.Error500InternalServerError("loading " + kind + " failed: " + err.Error())
}

// RegisterRestaurantRoutes registers restaurant endpoints with the Huma API.
func RegisterRestaurantRoutes(api huma.API, h *RestaurantHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-restaurants",
		Method:      http.MethodGet,
		Path:        "/api/v1/restaurants",
		Summary:     "List restaurants",
		Description: "Returns restaurants with optional search, neighborhood, cuisine and visited filters plus pagination.",
		Tags:        []string{"restaurants"},
	}, h.ListRestaurants)

	huma.Register(api, huma.Operation{
		OperationID:   "create-restaurant",
		Method:        http.MethodPost,
		Path:          "/api/v1/restaurants",
		Summary:       "Create a restaurant",
		Description:   "Creates a restaurant. Primary and secondary booking targets are derived from its booking URLs.",
		Tags:          []string{"restaurants"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateRestaurant)

	huma.Register(api, huma.Operation{
		OperationID: "get-restaurant",
		Method:      http.MethodGet,
		Path:        "/api/v1/restaurants/{id}",
		Summary:     "Get a restaurant by ID",
		Tags:        []string{"restaurants"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetRestaurant)

	huma.Register(api, huma.Operation{
		OperationID: "update-restaurant",
		Method:      http.MethodPut,
		Path:        "/api/v1/restaurants/{id}",
		Summary:     "Update a restaurant",
		Tags:        []string{"restaurants"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateRestaurant)
}
