package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListWatches(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "plain body",
			status:     http.StatusInternalServerError,
			body:       `oops`,
			wantDetail: "oops",
		},
		{
			name:       "problem document",
			status:     http.StatusNotFound,
			body:       `{"title":"Not Found","status":404,"detail":"watch not found"}`,
			wantDetail: "watch not found",
		},
		{
			name:   "validation errors",
			status: http.StatusUnprocessableEntity,
			body: `{"status":422,"detail":"validation failed",` +
				`"errors":[{"message":"expected number >= 1","location":"body.party_size"}]}`,
			wantDetail: "validation failed; body.party_size: expected number >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).GetWatch(context.Background(), "w1")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestClient_ListWatches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/watches", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.WatchTarget{{ID: "w1", PartySize: 2, Active: true}})
	}))
	defer srv.Close()

	result, err := New(srv.URL).ListWatches(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "w1", result[0].ID)
}

func TestClient_CreateWatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "r1", body["restaurant_id"])
		assert.InDelta(t, 2, body["party_size"], 0)
		assert.NotContains(t, body, "id")
		assert.NotContains(t, body, "last_checked")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.WatchTarget{ID: "w-created", RestaurantID: "r1", PartySize: 2})
	}))
	defer srv.Close()

	result, err := New(srv.URL).CreateWatch(context.Background(), &domain.WatchTarget{
		RestaurantID:   "r1",
		PartySize:      2,
		PreferredTimes: []string{"19:00"},
		Active:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, "w-created", result.ID)
}

func TestClient_SetWatchActive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/watches/w1/active", r.URL.Path)

		var body map[string]bool
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]bool{"active": false}, body)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).SetWatchActive(context.Background(), "w1", false))
}

func TestClient_DeleteWatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/watches/w1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).DeleteWatch(context.Background(), "w1"))
}

func TestClient_ListRestaurants(t *testing.T) {
	t.Parallel()

	visited := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/restaurants", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "pasta", q.Get("q"))
		assert.Equal(t, "false", q.Get("visited"))
		assert.Equal(t, "true", q.Get("monitored"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.False(t, q.Has("offset"))

		_ = json.NewEncoder(w).Encode(RestaurantsResponse{
			Restaurants: []domain.Restaurant{{ID: "r1", Name: "Lilia"}},
			Total:       1,
		})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ListRestaurants(context.Background(), &ListRestaurantsParams{
		Search:        "pasta",
		Visited:       &visited,
		MonitoredOnly: true,
		Limit:         10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Restaurants, 1)
}

func TestClient_ListRestaurantsNoParams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode(RestaurantsResponse{})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListRestaurants(context.Background(), nil)
	require.NoError(t, err)
}

func TestClient_CreateRestaurant(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req RestaurantRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://resy.com/cities/ny/lilia", req.BookingURLs.Resy)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Restaurant{
			ID:      "r1",
			Name:    req.Name,
			Primary: domain.ResyTarget("lilia"),
		})
	}))
	defer srv.Close()

	r, err := New(srv.URL).CreateRestaurant(context.Background(), &RestaurantRequest{
		Name:        "Lilia",
		BookingURLs: domain.BookingURLs{Resy: "https://resy.com/cities/ny/lilia"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ResyTarget("lilia"), r.Primary)
}

func TestClient_History(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/restaurants/r1/checks":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_ = json.NewEncoder(w).Encode([]domain.CheckRecord{{ID: "c1"}})
		case "/api/v1/notifications":
			assert.Equal(t, "r1", r.URL.Query().Get("restaurant_id"))
			_ = json.NewEncoder(w).Encode([]domain.NotificationRecord{{ID: "n1"}, {ID: "n2"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	checks, err := c.ListChecks(context.Background(), "r1", 5)
	require.NoError(t, err)
	assert.Len(t, checks, 1)

	notes, err := c.ListNotifications(context.Background(), "r1", 0)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestClient_ListJobs(t *testing.T) {
	t.Parallel()

	next := time.Date(2026, 2, 1, 18, 15, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name":"sweep","last_run":{"id":"j1","job_name":"sweep","status":"skipped",` +
			`"started_at":"2026-02-01T18:00:00Z"},"next_run_at":"2026-02-01T18:15:00Z","running":true}]`))
	}))
	defer srv.Close()

	jobs, err := New(srv.URL).ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "sweep", jobs[0].Name)
	require.NotNil(t, jobs[0].LastRun)
	assert.Equal(t, "skipped", jobs[0].LastRun.Status)
	require.NotNil(t, jobs[0].NextRunAt)
	assert.True(t, next.Equal(*jobs[0].NextRunAt))
	assert.True(t, jobs[0].Running)
}

func TestClient_GetJobHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/sweep", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode([]domain.JobRun{{ID: "j1", JobName: "sweep", Status: "succeeded"}})
	}))
	defer srv.Close()

	runs, err := New(srv.URL).GetJobHistory(context.Background(), "sweep", 3)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
}

func TestClient_TriggerSweep(t *testing.T) {
	t.Parallel()

	t.Run("completed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/sweep", r.URL.Path)
			_ = json.NewEncoder(w).Encode(SweepResult{
				Status:   "sweep completed",
				Targets:  2,
				NewSlots: 1,
				Outcomes: map[string]int{"notified": 1, "no_activity": 1},
			})
		}))
		defer srv.Close()

		res, err := New(srv.URL).TriggerSweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, res.Targets)
		assert.Equal(t, 1, res.Outcomes["notified"])
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"status":409,"detail":"a sweep is already running"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL).TriggerSweep(context.Background())
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusConflict))
	})
}

func TestClient_SystemState(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/system/state", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.SystemState{Restaurants: 4, ActiveWatches: 2})
	}))
	defer srv.Close()

	state, err := New(srv.URL).SystemState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, state.Restaurants)
	assert.Equal(t, 2, state.ActiveWatches)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com/", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
	assert.Equal(t, "http://example.com", c.baseURL)

	c = New("http://example.com", WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
}
