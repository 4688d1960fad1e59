//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/tablewatch/internal/store"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tablewatch_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testRestaurant() *domain.Restaurant {
	urls := domain.BookingURLs{
		Resy:      "https://resy.com/cities/ny/lilia",
		OpenTable: "https://www.opentable.com/r/lilia-brooklyn",
	}
	primary, secondary := domain.ResolveBookingTargets("Lilia", urls)
	return &domain.Restaurant{
		Name:           "Lilia",
		Neighborhood:   "Williamsburg",
		Cuisine:        "Italian",
		Priority:       domain.PriorityUrgent,
		MonitorEnabled: true,
		BookingURLs:    urls,
		Primary:        primary,
		Secondary:      secondary,
	}
}

func createWatch(t *testing.T, s *store.PostgresStore, restaurantID string) *domain.WatchTarget {
	t.Helper()
	w := &domain.WatchTarget{
		RestaurantID:   restaurantID,
		PartySize:      2,
		PreferredTimes: []string{"19:00", "19:30"},
		NotifyEmail:    "diner@example.com",
		Active:         true,
	}
	require.NoError(t, s.CreateWatch(context.Background(), w))
	return w
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)

	// Concurrent runs serialize on the advisory lock and both see the
	// schema already applied.
	errs := make(chan error, 2)
	for range 2 {
		go func() { errs <- s.Migrate(context.Background()) }()
	}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
}

func TestPostgresStore_RestaurantCRUD(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	r := testRestaurant()
	require.NoError(t, s.CreateRestaurant(ctx, r))
	require.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())

	got, err := s.GetRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lilia", got.Name)
	assert.Equal(t, domain.PriorityUrgent, got.Priority)
	assert.Equal(t, domain.ResyTarget("lilia"), got.Primary)
	assert.Equal(t, domain.OpenTableTarget("Lilia"), got.Secondary)
	assert.Equal(t, r.BookingURLs, got.BookingURLs)

	got.Visited = true
	got.Notes = "ask for the bar"
	require.NoError(t, s.UpdateRestaurant(ctx, got))

	again, err := s.GetRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, again.Visited)
	assert.Equal(t, "ask for the bar", again.Notes)

	_, err = s.GetRestaurant(ctx, "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_ListRestaurants(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.CreateRestaurant(ctx, testRestaurant()))
	require.NoError(t, s.CreateRestaurant(ctx, &domain.Restaurant{
		Name: "Via Carota", Neighborhood: "West Village", Cuisine: "Italian", Visited: true,
	}))
	require.NoError(t, s.CreateRestaurant(ctx, &domain.Restaurant{
		Name: "Dhamaka", Neighborhood: "Lower East Side", Cuisine: "Indian",
	}))

	all, total, err := s.ListRestaurants(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "Dhamaka", all[0].Name)

	italian, total, err := s.ListRestaurants(ctx, &store.RestaurantQuery{Search: ptr("ital")})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, italian, 2)

	monitored, _, err := s.ListRestaurants(ctx, &store.RestaurantQuery{MonitoredOnly: true})
	require.NoError(t, err)
	require.Len(t, monitored, 1)
	assert.Equal(t, "Lilia", monitored[0].Name)

	paged, total, err := s.ListRestaurants(ctx, &store.RestaurantQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, paged, 1)
	assert.Equal(t, "Lilia", paged[0].Name)
}

func TestPostgresStore_WatchLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	r := testRestaurant()
	require.NoError(t, s.CreateRestaurant(ctx, r))
	w := createWatch(t, s, r.ID)

	got, err := s.GetWatch(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"19:00", "19:30"}, got.PreferredTimes)
	assert.Nil(t, got.LastChecked)

	now := time.Now().Truncate(time.Microsecond)
	require.NoError(t, s.UpdateWatchLastChecked(ctx, w.ID, now))
	require.NoError(t, s.SetWatchActive(ctx, w.ID, false))

	active, err := s.ListWatches(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := s.ListWatches(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].LastChecked)
	assert.True(t, now.Equal(*all[0].LastChecked))

	got.PartySize = 4
	got.PreferredTimes = nil
	require.NoError(t, s.UpdateWatch(ctx, got))

	updated, err := s.GetWatch(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.PartySize)
	assert.Empty(t, updated.PreferredTimes)

	require.NoError(t, s.DeleteWatch(ctx, w.ID))
	require.ErrorIs(t, s.DeleteWatch(ctx, w.ID), store.ErrNotFound)
	require.ErrorIs(t, s.SetWatchActive(ctx, w.ID, true), store.ErrNotFound)
}

func TestPostgresStore_ListActiveWatchesOrder(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	normal := &domain.Restaurant{Name: "Normal"}
	require.NoError(t, s.CreateRestaurant(ctx, normal))
	urgent := testRestaurant()
	require.NoError(t, s.CreateRestaurant(ctx, urgent))

	wNormal := createWatch(t, s, normal.ID)
	wUrgent := createWatch(t, s, urgent.ID)

	watches, err := s.ListWatches(ctx, true)
	require.NoError(t, err)
	require.Len(t, watches, 2)
	assert.Equal(t, wUrgent.ID, watches[0].ID)
	assert.Equal(t, wNormal.ID, watches[1].ID)
}

func TestPostgresStore_RecentSlotKeysExcludeFailedDispatch(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	r := testRestaurant()
	require.NoError(t, s.CreateRestaurant(ctx, r))
	w := createWatch(t, s, r.ID)

	notified := &domain.CheckRecord{
		RestaurantID: r.ID,
		WatchID:      w.ID,
		Slots: []domain.AvailableSlot{
			{Date: "2026-02-01", Time: "19:00", PartySize: 2},
		},
	}
	require.NoError(t, s.CreateCheck(ctx, notified))
	require.NoError(t, s.MarkCheckNotified(ctx, notified.ID))

	failed := &domain.CheckRecord{
		RestaurantID: r.ID,
		WatchID:      w.ID,
		Slots: []domain.AvailableSlot{
			{Date: "2026-02-01", Time: "21:00", PartySize: 2},
		},
	}
	require.NoError(t, s.CreateCheck(ctx, failed))
	require.NoError(t, s.MarkCheckFailed(ctx, failed.ID))

	skipped := &domain.CheckRecord{
		RestaurantID:   r.ID,
		WatchID:        w.ID,
		DispatchStatus: domain.DispatchSkipped,
		Slots: []domain.AvailableSlot{
			{Date: "2026-02-02", Time: "18:00", PartySize: 2},
		},
	}
	require.NoError(t, s.CreateCheck(ctx, skipped))

	keys, err := s.ListRecentSlotKeys(ctx, r.ID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.SlotKey{
		{Date: "2026-02-01", Time: "19:00"},
		{Date: "2026-02-02", Time: "18:00"},
	}, keys)

	stale, err := s.ListRecentSlotKeys(ctx, r.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, stale)

	checks, err := s.ListChecks(ctx, r.ID, 10)
	require.NoError(t, err)
	require.Len(t, checks, 3)

	n := &domain.NotificationRecord{
		CheckID:      failed.ID,
		RestaurantID: r.ID,
		Channel:      "email",
		Recipient:    "diner@example.com",
		ErrorText:    "sendgrid returned 500",
	}
	require.NoError(t, s.InsertNotification(ctx, n))
	require.NotEmpty(t, n.ID)

	records, err := s.ListNotifications(ctx, r.ID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Success)
	assert.Equal(t, "sendgrid returned 500", records[0].ErrorText)

	state, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Restaurants)
	assert.Equal(t, 1, state.ActiveWatches)
	assert.Equal(t, 3, state.Checks24h)
	assert.Equal(t, 1, state.FailedDispatches24h)
	assert.Equal(t, []string{"Williamsburg"}, state.Neighborhoods)
	assert.Equal(t, []string{"Italian"}, state.CuisineTypes)
	assert.Nil(t, state.LastSweepAt)
}

func TestPostgresStore_JobRunsAndLocks(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "sweep")
	require.NoError(t, err)
	require.NoError(t, s.CompleteJobRun(ctx, id, "succeeded", "", 3))

	runs, err := s.ListJobRuns(ctx, "sweep", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 3, *runs[0].RowsAffected)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)

	state, err := s.GetSystemState(ctx)
	require.NoError(t, err)
	assert.NotNil(t, state.LastSweepAt)

	_, err = s.InsertJobRun(ctx, "sweep")
	require.NoError(t, err)
	crashed, err := s.RecoverStaleJobRuns(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, crashed)

	ok, err := s.AcquireSchedulerLock(ctx, "sweep", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireSchedulerLock(ctx, "sweep", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ReleaseSchedulerLock(ctx, "sweep", "a"))

	ok, err = s.AcquireSchedulerLock(ctx, "sweep", "b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func ptr[T any](v T) *T { return &v }
