package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// ListChecks returns a restaurant's check records, newest first.
func (c *Client) ListChecks(ctx context.Context, restaurantID string, limit int) ([]domain.CheckRecord, error) {
	path := "/api/v1/restaurants/" + url.PathEscape(restaurantID) + "/checks"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var checks []domain.CheckRecord
	if err := c.get(ctx, path, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

// ListNotifications returns notification attempts, optionally for one
// restaurant.
func (c *Client) ListNotifications(
	ctx context.Context,
	restaurantID string,
	limit int,
) ([]domain.NotificationRecord, error) {
	q := url.Values{}
	if restaurantID != "" {
		q.Set("restaurant_id", restaurantID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/notifications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var records []domain.NotificationRecord
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}
