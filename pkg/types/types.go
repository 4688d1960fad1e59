// Package domain defines the core business types for the table watcher.
package domain

import (
	"slices"
	"time"
)

// DateLayout is the ISO date format used for slot dates and watch windows.
const DateLayout = "2006-01-02"

// Priority ranks how eagerly a restaurant is wanted.
type Priority string

// Priority constants, lowest first.
const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Restaurant is a venue that can be monitored on one or more booking platforms.
type Restaurant struct {
	ID             string        `json:"id"              db:"id"`
	Name           string        `json:"name"            db:"name"`
	Neighborhood   string        `json:"neighborhood"    db:"neighborhood"`
	Cuisine        string        `json:"cuisine"         db:"cuisine"`
	Priority       Priority      `json:"priority"        db:"priority"`
	Visited        bool          `json:"visited"         db:"visited"`
	Notes          string        `json:"notes"           db:"notes"`
	MonitorEnabled bool          `json:"monitor_enabled" db:"monitor_enabled"`
	BookingURLs    BookingURLs   `json:"booking_urls"    db:"booking_urls"`
	Primary        BookingTarget `json:"primary"         db:"primary_target"`
	Secondary      BookingTarget `json:"secondary"       db:"secondary_target"`
	CreatedAt      time.Time     `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"      db:"updated_at"`
}

// Targets returns the configured booking targets in priority order.
func (r *Restaurant) Targets() []BookingTarget {
	var out []BookingTarget
	if r.Primary.Configured() {
		out = append(out, r.Primary)
	}
	if r.Secondary.Configured() && r.Secondary != r.Primary {
		out = append(out, r.Secondary)
	}
	return out
}

// WatchTarget is a standing request to monitor one restaurant's availability.
type WatchTarget struct {
	ID             string     `json:"id"                         db:"id"`
	RestaurantID   string     `json:"restaurant_id"              db:"restaurant_id"`
	PartySize      int        `json:"party_size"                 db:"party_size"`
	DateRangeStart string     `json:"date_range_start,omitempty" db:"date_range_start"`
	DateRangeEnd   string     `json:"date_range_end,omitempty"   db:"date_range_end"`
	PreferredTimes []string   `json:"preferred_times"            db:"preferred_times"`
	NotifyEmail    string     `json:"notify_email,omitempty"     db:"notify_email"`
	NotifySMS      string     `json:"notify_sms,omitempty"       db:"notify_sms"`
	Active         bool       `json:"active"                     db:"active"`
	LastChecked    *time.Time `json:"last_checked,omitempty"     db:"last_checked"`
	CreatedAt      time.Time  `json:"created_at"                 db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"                 db:"updated_at"`
}

// HasRecipient reports whether any notification channel is configured.
func (w *WatchTarget) HasRecipient() bool {
	return w.NotifyEmail != "" || w.NotifySMS != ""
}

// HasDateRange reports whether both ends of an explicit window are set.
func (w *WatchTarget) HasDateRange() bool {
	return w.DateRangeStart != "" && w.DateRangeEnd != ""
}

// WantsTime reports whether a normalized HH:MM time passes the watch's
// preferred-time filter. An empty preference list accepts every time.
func (w *WatchTarget) WantsTime(hhmm string) bool {
	return len(w.PreferredTimes) == 0 || slices.Contains(w.PreferredTimes, hhmm)
}

// AvailableSlot is a bookable date/time/party-size combination.
type AvailableSlot struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	PartySize  int    `json:"party_size"`
	BookingURL string `json:"booking_url"`
}

// Key returns the slot's dedup identity within a restaurant.
func (s AvailableSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}

// SlotKey identifies a slot within one restaurant. Party size and URL are
// not part of the identity.
type SlotKey struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// DispatchStatus tracks what happened to the notification for a check.
type DispatchStatus string

// Dispatch status constants.
const (
	DispatchSkipped  DispatchStatus = "skipped" // no recipient configured
	DispatchPending  DispatchStatus = "pending"
	DispatchNotified DispatchStatus = "notified"
	DispatchFailed   DispatchStatus = "failed"
)

// CheckRecord is an append-only record of newly observed slots.
type CheckRecord struct {
	ID             string          `json:"id"                    db:"id"`
	RestaurantID   string          `json:"restaurant_id"         db:"restaurant_id"`
	WatchID        string          `json:"watch_id"              db:"watch_id"`
	CheckedAt      time.Time       `json:"checked_at"            db:"checked_at"`
	Slots          []AvailableSlot `json:"slots"                 db:"slots"`
	Notified       bool            `json:"notified"              db:"notified"`
	BookingURL     string          `json:"booking_url,omitempty" db:"booking_url"`
	DispatchStatus DispatchStatus  `json:"dispatch_status"       db:"dispatch_status"`
}

// NotificationRecord is one dispatch attempt on one channel.
type NotificationRecord struct {
	ID           string    `json:"id"                   db:"id"`
	CheckID      string    `json:"check_id"             db:"check_id"`
	RestaurantID string    `json:"restaurant_id"        db:"restaurant_id"`
	Channel      string    `json:"channel"              db:"channel"`
	Recipient    string    `json:"recipient"            db:"recipient"`
	SentAt       time.Time `json:"sent_at"              db:"sent_at"`
	Success      bool      `json:"success"              db:"success"`
	ErrorText    string    `json:"error_text,omitempty" db:"error_text"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// SystemState is a snapshot of aggregate counts.
type SystemState struct {
	Restaurants          int        `json:"restaurants"`
	VisitedRestaurants   int        `json:"visited_restaurants"`
	MonitoredRestaurants int        `json:"monitored_restaurants"`
	Neighborhoods        []string   `json:"neighborhoods"`
	CuisineTypes         []string   `json:"cuisine_types"`
	Watches              int        `json:"watches"`
	ActiveWatches        int        `json:"active_watches"`
	Checks24h            int        `json:"checks_24h"`
	Notifications24h     int        `json:"notifications_24h"`
	FailedDispatches24h  int        `json:"failed_dispatches_24h"`
	LastSweepAt          *time.Time `json:"last_sweep_at,omitempty"`
	NextSweepAt          *time.Time `json:"next_sweep_at,omitempty"`
	SweepInProgress      bool       `json:"sweep_in_progress"`
}

// JobStatus summarizes a scheduled job: its most recent run, if any, and when
// it next starts in this process.
type JobStatus struct {
	Name      string     `json:"name"`
	LastRun   *JobRun    `json:"last_run,omitempty"`
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
	Running   bool       `json:"running"`
}
