package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// watchRequest contains only the fields the API accepts for create/update.
type watchRequest struct {
	RestaurantID   string   `json:"restaurant_id"`
	PartySize      int      `json:"party_size"`
	DateRangeStart string   `json:"date_range_start,omitempty"`
	DateRangeEnd   string   `json:"date_range_end,omitempty"`
	PreferredTimes []string `json:"preferred_times,omitempty"`
	NotifyEmail    string   `json:"notify_email,omitempty"`
	NotifySMS      string   `json:"notify_sms,omitempty"`
	Active         bool     `json:"active"`
}

func newWatchRequest(w *domain.WatchTarget) watchRequest {
	return watchRequest{
		RestaurantID:   w.RestaurantID,
		PartySize:      w.PartySize,
		DateRangeStart: w.DateRangeStart,
		DateRangeEnd:   w.DateRangeEnd,
		PreferredTimes: w.PreferredTimes,
		NotifyEmail:    w.NotifyEmail,
		NotifySMS:      w.NotifySMS,
		Active:         w.Active,
	}
}

// ListWatches returns all watches, or only active ones.
func (c *Client) ListWatches(ctx context.Context, activeOnly bool) ([]domain.WatchTarget, error) {
	path := "/api/v1/watches"
	if activeOnly {
		path += "?active=true"
	}

	var watches []domain.WatchTarget
	if err := c.get(ctx, path, &watches); err != nil {
		return nil, err
	}
	return watches, nil
}

// GetWatch returns a single watch by ID.
func (c *Client) GetWatch(ctx context.Context, id string) (*domain.WatchTarget, error) {
	var w domain.WatchTarget
	if err := c.get(ctx, "/api/v1/watches/"+url.PathEscape(id), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWatch creates a new watch.
func (c *Client) CreateWatch(ctx context.Context, w *domain.WatchTarget) (*domain.WatchTarget, error) {
	var created domain.WatchTarget
	if err := c.post(ctx, "/api/v1/watches", newWatchRequest(w), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWatch replaces an existing watch.
func (c *Client) UpdateWatch(ctx context.Context, w *domain.WatchTarget) (*domain.WatchTarget, error) {
	var updated domain.WatchTarget
	if err := c.put(ctx, "/api/v1/watches/"+url.PathEscape(w.ID), newWatchRequest(w), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetWatchActive activates or deactivates a watch.
func (c *Client) SetWatchActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, "/api/v1/watches/"+url.PathEscape(id)+"/active", body, nil)
}

// DeleteWatch deletes a watch by ID.
func (c *Client) DeleteWatch(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/watches/"+url.PathEscape(id), nil)
}
