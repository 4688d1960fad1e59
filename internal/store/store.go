// Package store defines the datastore abstraction for tablewatch.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// RestaurantQuery defines optional filters for restaurant queries.
type RestaurantQuery struct {
	Search        *string // case-insensitive match on name, neighborhood or cuisine
	Neighborhood  *string
	Cuisine       *string
	Visited       *bool
	MonitoredOnly bool
	Limit         int // default 50
	Offset        int
	OrderBy       string // "name", "priority", "created_at"
}

// Store defines all data access operations for tablewatch.
type Store interface {
	// Restaurants
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context, q *RestaurantQuery) ([]domain.Restaurant, int, error)
	UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error

	// Watches
	CreateWatch(ctx context.Context, w *domain.WatchTarget) error
	GetWatch(ctx context.Context, id string) (*domain.WatchTarget, error)
	ListWatches(ctx context.Context, activeOnly bool) ([]domain.WatchTarget, error)
	UpdateWatch(ctx context.Context, w *domain.WatchTarget) error
	DeleteWatch(ctx context.Context, id string) error
	SetWatchActive(ctx context.Context, id string, active bool) error
	UpdateWatchLastChecked(ctx context.Context, watchID string, t time.Time) error

	// Checks
	CreateCheck(ctx context.Context, c *domain.CheckRecord) error
	MarkCheckNotified(ctx context.Context, id string) error
	MarkCheckFailed(ctx context.Context, id string) error
	ListChecks(ctx context.Context, restaurantID string, limit int) ([]domain.CheckRecord, error)
	// ListRecentSlotKeys returns the distinct (date, time) pairs recorded for
	// a restaurant since the given time by checks that were notified or
	// skipped. Failed and pending checks are excluded.
	ListRecentSlotKeys(ctx context.Context, restaurantID string, since time.Time) ([]domain.SlotKey, error)

	// Notifications
	InsertNotification(ctx context.Context, n *domain.NotificationRecord) error
	ListNotifications(ctx context.Context, restaurantID string, limit int) ([]domain.NotificationRecord, error)

	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
