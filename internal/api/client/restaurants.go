package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// RestaurantsResponse wraps a paginated restaurant list.
type RestaurantsResponse struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Total       int                 `json:"total"`
	Limit       int                 `json:"limit"`
	Offset      int                 `json:"offset"`
}

// ListRestaurantsParams defines query parameters for restaurant queries.
type ListRestaurantsParams struct {
	Search        string
	Neighborhood  string
	Cuisine       string
	Visited       *bool
	MonitoredOnly bool
	Limit         int
	Offset        int
	OrderBy       string
}

func (p *ListRestaurantsParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Search != "" {
		q.Set("q", p.Search)
	}
	if p.Neighborhood != "" {
		q.Set("neighborhood", p.Neighborhood)
	}
	if p.Cuisine != "" {
		q.Set("cuisine", p.Cuisine)
	}
	if p.Visited != nil {
		q.Set("visited", strconv.FormatBool(*p.Visited))
	}
	if p.MonitoredOnly {
		q.Set("monitored", "true")
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.OrderBy != "" {
		q.Set("order_by", p.OrderBy)
	}
	return q
}

// RestaurantRequest contains the fields the API accepts for create and
// update. Booking targets are derived server-side from BookingURLs.
type RestaurantRequest struct {
	Name           string             `json:"name"                      yaml:"name"`
	Neighborhood   string             `json:"neighborhood,omitempty"    yaml:"neighborhood"`
	Cuisine        string             `json:"cuisine,omitempty"         yaml:"cuisine"`
	Priority       domain.Priority    `json:"priority,omitempty"        yaml:"priority"`
	Visited        bool               `json:"visited,omitempty"         yaml:"visited"`
	Notes          string             `json:"notes,omitempty"           yaml:"notes"`
	MonitorEnabled *bool              `json:"monitor_enabled,omitempty" yaml:"monitor_enabled"`
	BookingURLs    domain.BookingURLs `json:"booking_urls,omitempty"    yaml:"booking_urls"`
}

// ListRestaurants returns restaurants matching the given parameters.
func (c *Client) ListRestaurants(
	ctx context.Context,
	params *ListRestaurantsParams,
) (*RestaurantsResponse, error) {
	path := "/api/v1/restaurants"
	if q := params.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp RestaurantsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRestaurant returns a single restaurant by ID.
func (c *Client) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var r domain.Restaurant
	if err := c.get(ctx, "/api/v1/restaurants/"+url.PathEscape(id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRestaurant creates a restaurant.
func (c *Client) CreateRestaurant(ctx context.Context, req *RestaurantRequest) (*domain.Restaurant, error) {
	var created domain.Restaurant
	if err := c.post(ctx, "/api/v1/restaurants", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRestaurant replaces a restaurant's fields.
func (c *Client) UpdateRestaurant(
	ctx context.Context,
	id string,
	req *RestaurantRequest,
) (*domain.Restaurant, error) {
	var updated domain.Restaurant
	if err := c.put(ctx, "/api/v1/restaurants/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
