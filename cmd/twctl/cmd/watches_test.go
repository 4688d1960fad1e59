package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

func TestWatchCreateCmd(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.WatchTarget{ID: "w-new"})
	}))
	defer srv.Close()
	useServer(t, srv)

	var out bytes.Buffer
	c := watchCreateCmd()
	c.SetOut(&out)
	c.SetArgs([]string{
		"--restaurant", "r1",
		"--party", "4",
		"--start", "2026-02-01", "--end", "2026-02-07",
		"--time", "19:00", "--time", "7:30 PM",
		"--email", "diner@example.com",
	})
	require.NoError(t, c.Execute())

	assert.Equal(t, "r1", body["restaurant_id"])
	assert.InDelta(t, 4, body["party_size"], 0)
	assert.Equal(t, "2026-02-01", body["date_range_start"])
	assert.Equal(t, []any{"19:00", "7:30 PM"}, body["preferred_times"])
	assert.Equal(t, true, body["active"])
	assert.NotContains(t, body, "notify_sms")
	assert.Equal(t, "Watch created: w-new\n", out.String())
}

func TestWatchCreateCmd_Inactive(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.WatchTarget{ID: "w-new"})
	}))
	defer srv.Close()
	useServer(t, srv)

	c := watchCreateCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"--restaurant", "r1", "--inactive"})
	require.NoError(t, c.Execute())

	assert.Equal(t, false, body["active"])
	assert.InDelta(t, 2, body["party_size"], 0)
	assert.NotContains(t, body, "preferred_times")
}

func TestWatchUpdateCmd_KeepsUnsetFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(domain.WatchTarget{
				ID: "w1", RestaurantID: "r1", PartySize: 2,
				PreferredTimes: []string{"19:00"}, NotifyEmail: "diner@example.com", Active: true,
			})
		case http.MethodPut:
			assert.Equal(t, "/api/v1/watches/w1", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_ = json.NewEncoder(w).Encode(domain.WatchTarget{ID: "w1"})
		}
	}))
	defer srv.Close()
	useServer(t, srv)

	c := watchUpdateCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"w1", "--party", "3"})
	require.NoError(t, c.Execute())

	assert.InDelta(t, 3, body["party_size"], 0)
	assert.Equal(t, []any{"19:00"}, body["preferred_times"])
	assert.Equal(t, "diner@example.com", body["notify_email"])
	assert.Equal(t, true, body["active"])
}

func TestWatchDeactivateCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/watches/w1/active", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"updated"}`))
	}))
	defer srv.Close()
	useServer(t, srv)

	var out bytes.Buffer
	c := watchDeactivateCmd()
	c.SetOut(&out)
	c.SetArgs([]string{"w1"})
	require.NoError(t, c.Execute())
	assert.Equal(t, "Watch w1 deactivated.\n", out.String())
}

func TestSweepCmd_AlreadyRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":409,"detail":"a sweep is already running"}`))
	}))
	defer srv.Close()
	useServer(t, srv)

	c := sweepCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{})

	err := c.Execute()
	require.Error(t, err)
	assert.Equal(t, "a sweep is already running, try again when it finishes", err.Error())
}
