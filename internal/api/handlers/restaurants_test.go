package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tablewatch/internal/api/handlers"
	"github.com/donaldgifford/tablewatch/internal/store"
	storeMocks "github.com/donaldgifford/tablewatch/internal/store/mocks"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

func newRestaurantAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterRestaurantRoutes(api, handlers.NewRestaurantHandler(ms))
	return api
}

func TestRestaurantHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters returns restaurants",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListRestaurants(mock.Anything, mock.Anything).
					Return([]domain.Restaurant{{ID: "r1", Name: "Lilia"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "search and neighborhood filters",
			query: "?q=pasta&neighborhood=Williamsburg",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListRestaurants(mock.Anything, mock.MatchedBy(func(q *store.RestaurantQuery) bool {
						return q.Search != nil && *q.Search == "pasta" &&
							q.Neighborhood != nil && *q.Neighborhood == "Williamsburg" &&
							q.Cuisine == nil
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"restaurants":[]`,
		},
		{
			name:  "visited and monitored filters",
			query: "?visited=false&monitored=true",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListRestaurants(mock.Anything, mock.MatchedBy(func(q *store.RestaurantQuery) bool {
						return q.Visited != nil && !*q.Visited && q.MonitoredOnly
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "pagination and ordering",
			query: "?limit=10&offset=20&order_by=priority",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListRestaurants(mock.Anything, mock.MatchedBy(func(q *store.RestaurantQuery) bool {
						return q.Limit == 10 && q.Offset == 20 && q.OrderBy == "priority"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offset":20`,
		},
		{
			name:       "invalid order_by rejected",
			query:      "?order_by=rating",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store error",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListRestaurants(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing restaurants failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newRestaurantAPI(t, ms).Get("/api/v1/restaurants" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRestaurantHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "found", wantStatus: http.StatusOK, wantBody: `"Lilia"`},
		{
			name:       "not found",
			err:        fmt.Errorf("restaurant r1: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "restaurant not found",
		},
		{
			name:       "store error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			var r *domain.Restaurant
			if tt.err == nil {
				r = &domain.Restaurant{ID: "r1", Name: "Lilia"}
			}
			ms.EXPECT().GetRestaurant(mock.Anything, "r1").Return(r, tt.err).Once()

			resp := newRestaurantAPI(t, ms).Get("/api/v1/restaurants/r1")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestRestaurantHandler_CreateResolvesTargets(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		CreateRestaurant(mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
			return r.Name == "Lilia" &&
				r.Priority == domain.PriorityNormal &&
				r.MonitorEnabled &&
				r.Primary == domain.ResyTarget("lilia") &&
				r.Secondary == domain.OpenTableTarget("Lilia")
		})).
		Run(func(_ context.Context, r *domain.Restaurant) { r.ID = "r-new" }).
		Return(nil).
		Once()

	resp := newRestaurantAPI(t, ms).Post("/api/v1/restaurants", map[string]any{
		"name":         " Lilia ",
		"neighborhood": "Williamsburg",
		"booking_urls": map[string]any{
			"resy":      "https://resy.com/cities/ny/lilia",
			"opentable": "https://www.opentable.com/r/lilia-brooklyn",
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"r-new"`)
	assert.Contains(t, resp.Body.String(), `"kind":"resy"`)
}

func TestRestaurantHandler_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{"cuisine": "Italian"}},
		{name: "blank name", body: map[string]any{"name": "   "}},
		{name: "unknown priority", body: map[string]any{"name": "Lilia", "priority": "someday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			resp := newRestaurantAPI(t, ms).Post("/api/v1/restaurants", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		})
	}
}

func TestRestaurantHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces fields", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			UpdateRestaurant(mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
				return r.ID == "r1" && r.Visited && !r.MonitorEnabled &&
					r.Priority == domain.PriorityUrgent &&
					r.Primary == domain.OpenTableTarget("Dhamaka") &&
					!r.Secondary.Configured()
			})).
			Return(nil).
			Once()

		resp := newRestaurantAPI(t, ms).Put("/api/v1/restaurants/r1", map[string]any{
			"name":            "Dhamaka",
			"priority":        "urgent",
			"visited":         true,
			"monitor_enabled": false,
			"booking_urls":    map[string]any{"opentable": "https://www.opentable.com/r/dhamaka"},
		})
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().UpdateRestaurant(mock.Anything, mock.Anything).Return(store.ErrNotFound).Once()

		resp := newRestaurantAPI(t, ms).Put("/api/v1/restaurants/missing", map[string]any{"name": "Dhamaka"})
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
