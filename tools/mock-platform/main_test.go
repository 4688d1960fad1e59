package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tablewatch/internal/browser"
	"github.com/donaldgifford/tablewatch/internal/platform"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	fx, err := loadFixture(filepath.Join("testdata", "venues.yaml"))
	require.NoError(t, err)
	return fx
}

func TestLoadFixture(t *testing.T) {
	t.Parallel()

	fx := loadTestFixture(t)
	require.Len(t, fx.Venues, 3)
	assert.Equal(t, []string{"5:30 PM", "7:00 PM", "9:45 PM"}, fx.Venues[0].Times)
	assert.Empty(t, fx.Venues[0].timesOn("2026-02-14"))
	assert.Equal(t, []string{"10:00 PM"}, fx.Venues[2].timesOn("2026-02-01"))
}

func TestLoadFixture_Missing(t *testing.T) {
	t.Parallel()

	_, err := loadFixture(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading fixture")
}

func TestResyHandler(t *testing.T) {
	t.Parallel()

	mux := newMux(testLogger(), loadTestFixture(t))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantSlots  int
	}{
		{name: "default times", path: "/cities/ny/lilia?date=2026-02-01&seats=2", wantStatus: http.StatusOK, wantSlots: 3},
		{name: "date override closed", path: "/cities/ny/lilia?date=2026-02-14&seats=2", wantStatus: http.StatusOK},
		{name: "opentable-only venue", path: "/cities/ny/via-carota?date=2026-02-01", wantStatus: http.StatusNotFound},
		{name: "unknown venue", path: "/cities/ny/nope?date=2026-02-01", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSlots, strings.Count(rec.Body.String(), `data-test="time-slot"`))
		})
	}
}

func TestOpenTableHandler(t *testing.T) {
	t.Parallel()

	mux := newMux(testLogger(), loadTestFixture(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/s?term=via+carota&covers=2&dateTime=2026-02-01T19%3A00&metroId=8", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-test="times-702"`)
	assert.Equal(t, 2, strings.Count(body, `class="timeSlot"`))
	assert.Contains(t, body, "/booking/via-carota?covers=2&amp;date=2026-02-01")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/s?term=Don+Angie&dateTime=2026-02-01T19%3A00", http.NoBody))
	assert.NotContains(t, rec.Body.String(), "times-702")
}

// The scrapers, rendering through a plain HTTP session, read the pages this
// server produces.
func TestScrapersAgainstMockPlatform(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newMux(testLogger(), loadTestFixture(t)))
	t.Cleanup(srv.Close)

	session := browser.NewHTTP()
	require.NoError(t, session.Open(context.Background()))
	t.Cleanup(func() { _ = session.Close() })

	opts := []platform.Option{
		platform.WithBaseURL(srv.URL),
		platform.WithPacer(platform.NewPacer(0, 0, 0)),
		platform.WithLogger(testLogger()),
	}

	t.Run("resy", func(t *testing.T) {
		t.Parallel()

		slots, err := platform.NewResy(session, opts...).CheckAvailability(context.Background(), platform.Query{
			Identifier:     "lilia",
			Date:           "2026-02-01",
			PartySize:      2,
			PreferredTimes: []string{"19:00", "21:45"},
		})
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "19:00", slots[0].Time)
		assert.Equal(t, "21:45", slots[1].Time)
		assert.Equal(t, srv.URL+"/cities/ny/lilia?date=2026-02-01&seats=2&time=19:00", slots[0].BookingURL)
	})

	t.Run("resy closed date", func(t *testing.T) {
		t.Parallel()

		slots, err := platform.NewResy(session, opts...).CheckAvailability(context.Background(), platform.Query{
			Identifier: "lilia",
			Date:       "2026-02-14",
			PartySize:  2,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("resy unknown venue is transient", func(t *testing.T) {
		t.Parallel()

		_, err := platform.NewResy(session, opts...).CheckAvailability(context.Background(), platform.Query{
			Identifier: "nope",
			Date:       "2026-02-01",
			PartySize:  2,
		})
		require.Error(t, err)
		assert.True(t, platform.IsTransient(err))
	})

	t.Run("opentable", func(t *testing.T) {
		t.Parallel()

		slots, err := platform.NewOpenTable(session, opts...).CheckAvailability(context.Background(), platform.Query{
			Identifier: "Via Carota",
			Date:       "2026-02-01",
			PartySize:  4,
		})
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "18:00", slots[0].Time)
		assert.Equal(t, 4, slots[0].PartySize)
		assert.True(t, strings.HasPrefix(slots[0].BookingURL, srv.URL+"/booking/via-carota?"))
	})
}
