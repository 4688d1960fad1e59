package store

// SQL query constants organized by entity.
// PostgresStore methods reference these constants.

const restaurantColumns = `id, name, neighborhood, cuisine, priority, visited, notes,
	monitor_enabled, booking_urls,
	primary_kind, primary_identifier, secondary_kind, secondary_identifier,
	created_at, updated_at`

// Restaurant queries.
const (
	queryInsertRestaurant = `
		INSERT INTO restaurants (
			name, neighborhood, cuisine, priority, visited, notes,
			monitor_enabled, booking_urls,
			primary_kind, primary_identifier, secondary_kind, secondary_identifier
		) VALUES (
			@name, @neighborhood, @cuisine, @priority, @visited, @notes,
			@monitor_enabled, @booking_urls,
			@primary_kind, @primary_identifier, @secondary_kind, @secondary_identifier
		)
		RETURNING id, created_at, updated_at`

	queryGetRestaurant = `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1`

	queryUpdateRestaurant = `
		UPDATE restaurants SET
			name                 = @name,
			neighborhood         = @neighborhood,
			cuisine              = @cuisine,
			priority             = @priority,
			visited              = @visited,
			notes                = @notes,
			monitor_enabled      = @monitor_enabled,
			booking_urls         = @booking_urls,
			primary_kind         = @primary_kind,
			primary_identifier   = @primary_identifier,
			secondary_kind       = @secondary_kind,
			secondary_identifier = @secondary_identifier,
			updated_at           = now()
		WHERE id = @id
		RETURNING updated_at`
)

const watchColumns = `id, restaurant_id, party_size, date_range_start, date_range_end,
	preferred_times, notify_email, notify_sms, active, last_checked,
	created_at, updated_at`

// Watch queries.
const (
	queryInsertWatch = `
		INSERT INTO watch_targets (
			restaurant_id, party_size, date_range_start, date_range_end,
			preferred_times, notify_email, notify_sms, active
		) VALUES (
			@restaurant_id, @party_size, @date_range_start, @date_range_end,
			@preferred_times, @notify_email, @notify_sms, @active
		)
		RETURNING id, created_at, updated_at`

	queryGetWatch = `
		SELECT ` + watchColumns + `
		FROM watch_targets
		WHERE id = $1`

	queryListWatches = `
		SELECT ` + watchColumns + `
		FROM watch_targets
		ORDER BY created_at`

	queryListActiveWatches = `
		SELECT w.id, w.restaurant_id, w.party_size, w.date_range_start, w.date_range_end,
			w.preferred_times, w.notify_email, w.notify_sms, w.active, w.last_checked,
			w.created_at, w.updated_at
		FROM watch_targets w
		JOIN restaurants r ON r.id = w.restaurant_id
		WHERE w.active
		ORDER BY CASE r.priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 ELSE 2 END,
			w.last_checked NULLS FIRST, w.created_at`

	queryUpdateWatch = `
		UPDATE watch_targets SET
			party_size       = @party_size,
			date_range_start = @date_range_start,
			date_range_end   = @date_range_end,
			preferred_times  = @preferred_times,
			notify_email     = @notify_email,
			notify_sms       = @notify_sms,
			active           = @active,
			updated_at       = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteWatch = `DELETE FROM watch_targets WHERE id = $1`

	querySetWatchActive = `
		UPDATE watch_targets SET active = $2, updated_at = now() WHERE id = $1`

	queryUpdateWatchLastChecked = `
		UPDATE watch_targets SET last_checked = $2 WHERE id = $1`
)

// Check queries.
const (
	queryInsertCheck = `
		INSERT INTO check_records (
			restaurant_id, watch_id, checked_at, slots, notified, booking_url, dispatch_status
		) VALUES (
			@restaurant_id, @watch_id, @checked_at, @slots, @notified, @booking_url, @dispatch_status
		)
		RETURNING id`

	queryMarkCheckNotified = `
		UPDATE check_records SET notified = true, dispatch_status = 'notified' WHERE id = $1`

	queryMarkCheckFailed = `
		UPDATE check_records SET notified = false, dispatch_status = 'failed' WHERE id = $1`

	queryListChecks = `
		SELECT id, restaurant_id, watch_id, checked_at, slots, notified, booking_url, dispatch_status
		FROM check_records
		WHERE restaurant_id = $1
		ORDER BY checked_at DESC
		LIMIT $2`

	queryListRecentSlotKeys = `
		SELECT DISTINCT s->>'date', s->>'time'
		FROM check_records c
		CROSS JOIN LATERAL jsonb_array_elements(c.slots) AS s
		WHERE c.restaurant_id = $1
			AND c.checked_at >= $2
			AND c.dispatch_status IN ('notified', 'skipped')`
)

// Notification queries.
const (
	queryInsertNotification = `
		INSERT INTO notification_records (
			check_id, restaurant_id, channel, recipient, sent_at, success, error_text
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id`

	queryListNotifications = `
		SELECT id, check_id, restaurant_id, channel, recipient, sent_at, success,
			COALESCE(error_text, '')
		FROM notification_records
		ORDER BY sent_at DESC
		LIMIT $1`

	queryListNotificationsByRestaurant = `
		SELECT id, check_id, restaurant_id, channel, recipient, sent_at, success,
			COALESCE(error_text, '')
		FROM notification_records
		WHERE restaurant_id = $1
		ORDER BY sent_at DESC
		LIMIT $2`
)

// System state queries.
const (
	querySystemStateCounts = `
		SELECT
			(SELECT COUNT(*) FROM restaurants),
			(SELECT COUNT(*) FROM restaurants WHERE visited),
			(SELECT COUNT(*) FROM restaurants WHERE monitor_enabled),
			(SELECT COUNT(*) FROM watch_targets),
			(SELECT COUNT(*) FROM watch_targets WHERE active),
			(SELECT COUNT(*) FROM check_records WHERE checked_at > now() - interval '24 hours'),
			(SELECT COUNT(*) FROM notification_records WHERE sent_at > now() - interval '24 hours'),
			(SELECT COUNT(*) FROM check_records
				WHERE dispatch_status = 'failed' AND checked_at > now() - interval '24 hours'),
			(SELECT MAX(completed_at) FROM job_runs WHERE job_name = 'sweep' AND status = 'succeeded')`

	queryDistinctNeighborhoods = `
		SELECT DISTINCT neighborhood FROM restaurants WHERE neighborhood <> '' ORDER BY neighborhood`

	queryDistinctCuisines = `
		SELECT DISTINCT cuisine FROM restaurants WHERE cuisine <> '' ORDER BY cuisine`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
