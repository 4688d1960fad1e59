package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns < defaultPoolSize {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

func restaurantArgs(r *domain.Restaurant) (pgx.NamedArgs, error) {
	urls, err := json.Marshal(r.BookingURLs)
	if err != nil {
		return nil, fmt.Errorf("marshaling booking urls: %w", err)
	}
	priority := r.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	return pgx.NamedArgs{
		"id":                   r.ID,
		"name":                 r.Name,
		"neighborhood":         r.Neighborhood,
		"cuisine":              r.Cuisine,
		"priority":             string(priority),
		"visited":              r.Visited,
		"notes":                r.Notes,
		"monitor_enabled":      r.MonitorEnabled,
		"booking_urls":         urls,
		"primary_kind":         string(r.Primary.Kind),
		"primary_identifier":   r.Primary.Identifier,
		"secondary_kind":       string(r.Secondary.Kind),
		"secondary_identifier": r.Secondary.Identifier,
	}, nil
}

// CreateRestaurant inserts a new restaurant and fills in its ID and timestamps.
func (s *PostgresStore) CreateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	args, err := restaurantArgs(r)
	if err != nil {
		return err
	}
	delete(args, "id")

	if err := s.pool.QueryRow(ctx, queryInsertRestaurant, args).Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting restaurant: %w", err)
	}
	if r.Priority == "" {
		r.Priority = domain.PriorityNormal
	}
	return nil
}

// GetRestaurant retrieves a restaurant by ID.
func (s *PostgresStore) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	r := &domain.Restaurant{}
	err := scanRestaurant(s.pool.QueryRow(ctx, queryGetRestaurant, id), r)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting restaurant: %w", err)
	}
	return r, nil
}

// ListRestaurants queries restaurants with optional filters, returning results
// and the total count before pagination.
func (s *PostgresStore) ListRestaurants(
	ctx context.Context,
	q *RestaurantQuery,
) ([]domain.Restaurant, int, error) {
	if q == nil {
		q = &RestaurantQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting restaurants: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var r domain.Restaurant
		if err := scanRestaurant(rows, &r); err != nil {
			return nil, 0, fmt.Errorf("scanning restaurant: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating restaurants: %w", err)
	}

	return restaurants, total, nil
}

// UpdateRestaurant overwrites a restaurant's mutable fields.
func (s *PostgresStore) UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	args, err := restaurantArgs(r)
	if err != nil {
		return err
	}

	err = s.pool.QueryRow(ctx, queryUpdateRestaurant, args).Scan(&r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("restaurant %s: %w", r.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating restaurant: %w", err)
	}
	return nil
}

func watchArgs(w *domain.WatchTarget) pgx.NamedArgs {
	preferred := w.PreferredTimes
	if preferred == nil {
		preferred = []string{}
	}
	return pgx.NamedArgs{
		"id":               w.ID,
		"restaurant_id":    w.RestaurantID,
		"party_size":       w.PartySize,
		"date_range_start": w.DateRangeStart,
		"date_range_end":   w.DateRangeEnd,
		"preferred_times":  preferred,
		"notify_email":     w.NotifyEmail,
		"notify_sms":       w.NotifySMS,
		"active":           w.Active,
	}
}

// CreateWatch inserts a new watch target.
func (s *PostgresStore) CreateWatch(ctx context.Context, w *domain.WatchTarget) error {
	args := watchArgs(w)
	delete(args, "id")

	if err := s.pool.QueryRow(ctx, queryInsertWatch, args).Scan(
		&w.ID, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting watch: %w", err)
	}
	return nil
}

// GetWatch retrieves a watch target by ID.
func (s *PostgresStore) GetWatch(ctx context.Context, id string) (*domain.WatchTarget, error) {
	w := &domain.WatchTarget{}
	err := scanWatch(s.pool.QueryRow(ctx, queryGetWatch, id), w)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("watch %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting watch: %w", err)
	}
	return w, nil
}

// ListWatches returns watch targets. With activeOnly, only active targets are
// returned, most urgent restaurants and least recently checked first.
func (s *PostgresStore) ListWatches(ctx context.Context, activeOnly bool) ([]domain.WatchTarget, error) {
	query := queryListWatches
	if activeOnly {
		query = queryListActiveWatches
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying watches: %w", err)
	}
	defer rows.Close()

	watches := []domain.WatchTarget{}
	for rows.Next() {
		var w domain.WatchTarget
		if err := scanWatch(rows, &w); err != nil {
			return nil, fmt.Errorf("scanning watch: %w", err)
		}
		watches = append(watches, w)
	}

	return watches, rows.Err()
}

// UpdateWatch overwrites a watch target's mutable fields.
func (s *PostgresStore) UpdateWatch(ctx context.Context, w *domain.WatchTarget) error {
	err := s.pool.QueryRow(ctx, queryUpdateWatch, watchArgs(w)).Scan(&w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("watch %s: %w", w.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating watch: %w", err)
	}
	return nil
}

// DeleteWatch removes a watch target and its history.
func (s *PostgresStore) DeleteWatch(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteWatch, id)
	if err != nil {
		return fmt.Errorf("deleting watch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("watch %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetWatchActive toggles whether a watch target is swept.
func (s *PostgresStore) SetWatchActive(ctx context.Context, id string, active bool) error {
	tag, err := s.pool.Exec(ctx, querySetWatchActive, id, active)
	if err != nil {
		return fmt.Errorf("setting watch active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("watch %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateWatchLastChecked sets the last_checked timestamp for a watch.
func (s *PostgresStore) UpdateWatchLastChecked(ctx context.Context, watchID string, t time.Time) error {
	if _, err := s.pool.Exec(ctx, queryUpdateWatchLastChecked, watchID, t); err != nil {
		return fmt.Errorf("updating watch last_checked: %w", err)
	}
	return nil
}

// CreateCheck appends a check record and fills in its ID.
func (s *PostgresStore) CreateCheck(ctx context.Context, c *domain.CheckRecord) error {
	slots := c.Slots
	if slots == nil {
		slots = []domain.AvailableSlot{}
	}
	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("marshaling slots: %w", err)
	}
	if c.CheckedAt.IsZero() {
		c.CheckedAt = time.Now()
	}
	if c.DispatchStatus == "" {
		c.DispatchStatus = domain.DispatchPending
	}

	args := pgx.NamedArgs{
		"restaurant_id":   c.RestaurantID,
		"watch_id":        c.WatchID,
		"checked_at":      c.CheckedAt,
		"slots":           slotsJSON,
		"notified":        c.Notified,
		"booking_url":     c.BookingURL,
		"dispatch_status": string(c.DispatchStatus),
	}

	if err := s.pool.QueryRow(ctx, queryInsertCheck, args).Scan(&c.ID); err != nil {
		return fmt.Errorf("inserting check: %w", err)
	}
	return nil
}

// MarkCheckNotified records a successful dispatch for a check.
func (s *PostgresStore) MarkCheckNotified(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryMarkCheckNotified, id); err != nil {
		return fmt.Errorf("marking check notified: %w", err)
	}
	return nil
}

// MarkCheckFailed records a failed dispatch for a check.
func (s *PostgresStore) MarkCheckFailed(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryMarkCheckFailed, id); err != nil {
		return fmt.Errorf("marking check failed: %w", err)
	}
	return nil
}

// ListChecks returns a restaurant's most recent check records, newest first.
func (s *PostgresStore) ListChecks(
	ctx context.Context,
	restaurantID string,
	limit int,
) ([]domain.CheckRecord, error) {
	rows, err := s.pool.Query(ctx, queryListChecks, restaurantID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying checks: %w", err)
	}
	defer rows.Close()

	checks := []domain.CheckRecord{}
	for rows.Next() {
		var c domain.CheckRecord
		if err := rows.Scan(
			&c.ID, &c.RestaurantID, &c.WatchID, &c.CheckedAt, &c.Slots,
			&c.Notified, &c.BookingURL, &c.DispatchStatus,
		); err != nil {
			return nil, fmt.Errorf("scanning check: %w", err)
		}
		checks = append(checks, c)
	}

	return checks, rows.Err()
}

// ListRecentSlotKeys implements Store.
func (s *PostgresStore) ListRecentSlotKeys(
	ctx context.Context,
	restaurantID string,
	since time.Time,
) ([]domain.SlotKey, error) {
	rows, err := s.pool.Query(ctx, queryListRecentSlotKeys, restaurantID, since)
	if err != nil {
		return nil, fmt.Errorf("querying recent slots: %w", err)
	}
	defer rows.Close()

	var keys []domain.SlotKey
	for rows.Next() {
		var k domain.SlotKey
		if err := rows.Scan(&k.Date, &k.Time); err != nil {
			return nil, fmt.Errorf("scanning slot key: %w", err)
		}
		keys = append(keys, k)
	}

	return keys, rows.Err()
}

// InsertNotification records one dispatch attempt.
func (s *PostgresStore) InsertNotification(ctx context.Context, n *domain.NotificationRecord) error {
	if n.SentAt.IsZero() {
		n.SentAt = time.Now()
	}
	if err := s.pool.QueryRow(ctx, queryInsertNotification,
		n.CheckID, n.RestaurantID, n.Channel, n.Recipient, n.SentAt, n.Success, n.ErrorText,
	).Scan(&n.ID); err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

// ListNotifications returns recent dispatch attempts, newest first. An empty
// restaurantID lists attempts across all restaurants.
func (s *PostgresStore) ListNotifications(
	ctx context.Context,
	restaurantID string,
	limit int,
) ([]domain.NotificationRecord, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if restaurantID == "" {
		rows, err = s.pool.Query(ctx, queryListNotifications, clampLimit(limit))
	} else {
		rows, err = s.pool.Query(ctx, queryListNotificationsByRestaurant, restaurantID, clampLimit(limit))
	}
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	records := []domain.NotificationRecord{}
	for rows.Next() {
		var n domain.NotificationRecord
		if err := rows.Scan(
			&n.ID, &n.CheckID, &n.RestaurantID, &n.Channel, &n.Recipient,
			&n.SentAt, &n.Success, &n.ErrorText,
		); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		records = append(records, n)
	}

	return records, rows.Err()
}

// GetSystemState returns aggregate counts and the distinct neighborhood and
// cuisine values.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	if err := s.pool.QueryRow(ctx, querySystemStateCounts).Scan(
		&st.Restaurants, &st.VisitedRestaurants, &st.MonitoredRestaurants,
		&st.Watches, &st.ActiveWatches,
		&st.Checks24h, &st.Notifications24h, &st.FailedDispatches24h,
		&st.LastSweepAt,
	); err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}

	var err error
	if st.Neighborhoods, err = s.distinctStrings(ctx, queryDistinctNeighborhoods); err != nil {
		return nil, fmt.Errorf("querying neighborhoods: %w", err)
	}
	if st.CuisineTypes, err = s.distinctStrings(ctx, queryDistinctCuisines); err != nil {
		return nil, fmt.Errorf("querying cuisines: %w", err)
	}

	return st, nil
}

func (s *PostgresStore) distinctStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// InsertJobRun creates a new job_runs row with status "running" and returns its ID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // held by another and not yet expired
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	runs := []domain.JobRun{}
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanRestaurant(row scannable, r *domain.Restaurant) error {
	return row.Scan(
		&r.ID, &r.Name, &r.Neighborhood, &r.Cuisine, &r.Priority, &r.Visited, &r.Notes,
		&r.MonitorEnabled, &r.BookingURLs,
		&r.Primary.Kind, &r.Primary.Identifier, &r.Secondary.Kind, &r.Secondary.Identifier,
		&r.CreatedAt, &r.UpdatedAt,
	)
}

func scanWatch(row scannable, w *domain.WatchTarget) error {
	return row.Scan(
		&w.ID, &w.RestaurantID, &w.PartySize, &w.DateRangeStart, &w.DateRangeEnd,
		&w.PreferredTimes, &w.NotifyEmail, &w.NotifySMS, &w.Active, &w.LastChecked,
		&w.CreatedAt, &w.UpdatedAt,
	)
}
