package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
)

const maxBodyBytes = 8 << 20

// HTTP is a Session that fetches pages with a plain GET and executes no
// scripts. It suits server-rendered pages such as the local mock platform.
type HTTP struct {
	client    *http.Client
	userAgent string
	open      atomic.Bool
}

// HTTPOption configures an HTTP session.
type HTTPOption func(*HTTP)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = hc
	}
}

// WithHTTPUserAgent sets the User-Agent header sent with each request.
func WithHTTPUserAgent(ua string) HTTPOption {
	return func(h *HTTP) {
		h.userAgent = ua
	}
}

// NewHTTP creates an unopened HTTP session.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{client: &http.Client{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Open marks the session usable.
func (h *HTTP) Open(_ context.Context) error {
	h.open.Store(true)
	return nil
}

// Close marks the session closed.
func (h *HTTP) Close() error {
	h.open.Store(false)
	return nil
}

// Render fetches req.URL. Ready reports whether any wait selector matches
// the returned document.
func (h *HTTP) Render(ctx context.Context, req RenderRequest) (*Page, error) {
	if !h.open.Load() {
		return nil, ErrNotOpen
	}

	ctx, cancel := context.WithTimeout(ctx, req.navTimeout())
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	if h.userAgent != "" {
		httpReq.Header.Set("User-Agent", h.userAgent)
	}
	httpReq.Header.Set("Accept", "text/html")

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", req.URL, resp.StatusCode)
	}

	page := &Page{
		URL:   resp.Request.URL.String(),
		HTML:  string(body),
		Ready: len(req.Waits) == 0,
	}
	if page.Ready {
		return page, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	for _, w := range req.Waits {
		if doc.Find(w.Selector).Length() > 0 {
			page.Ready = true
			break
		}
	}

	return page, nil
}
