package browser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chromedp/chromedp"
)

// Chrome is a Session backed by a single headless Chrome process driven over
// the DevTools protocol. Each Render call opens its own tab.
type Chrome struct {
	headless  bool
	userAgent string
	execPath  string
	logger    *slog.Logger

	mu            sync.Mutex
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

// ChromeOption configures a Chrome session.
type ChromeOption func(*Chrome)

// WithHeadless toggles headless mode. Defaults to true.
func WithHeadless(h bool) ChromeOption {
	return func(c *Chrome) {
		c.headless = h
	}
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) ChromeOption {
	return func(c *Chrome) {
		c.userAgent = ua
	}
}

// WithExecPath points at a specific Chrome binary.
func WithExecPath(p string) ChromeOption {
	return func(c *Chrome) {
		c.execPath = p
	}
}

// WithChromeLogger sets the logger used for DevTools errors.
func WithChromeLogger(l *slog.Logger) ChromeOption {
	return func(c *Chrome) {
		c.logger = l
	}
}

// NewChrome creates an unopened Chrome session.
func NewChrome(opts ...ChromeOption) *Chrome {
	c := &Chrome{
		headless: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Chrome) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", c.headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.NoSandbox,
		chromedp.WindowSize(1280, 900),
	)
	if c.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.userAgent))
	}
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}
	return opts
}

// Open launches the browser. Calling Open on an open session is a no-op.
// The browser outlives ctx; only Close stops it.
func (c *Chrome) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browserCtx != nil {
		return nil
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), c.allocatorOptions()...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			c.logger.Debug("devtools error", "detail", fmt.Sprintf(format, args...))
		}),
	)

	// The first Run on a fresh context starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return fmt.Errorf("starting chrome: %w", err)
	}

	c.browserCtx = browserCtx
	c.cancelBrowser = cancelBrowser
	c.cancelAlloc = cancelAlloc
	c.logger.Info("browser session opened", "headless", c.headless)
	return nil
}

// Render navigates a new tab to req.URL, waits for the first matching
// selector and returns the document HTML.
func (c *Chrome) Render(ctx context.Context, req RenderRequest) (*Page, error) {
	c.mu.Lock()
	browserCtx := c.browserCtx
	c.mu.Unlock()

	if browserCtx == nil {
		return nil, ErrNotOpen
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	if err := chromedp.Run(tabCtx); err != nil {
		return nil, fmt.Errorf("opening tab: %w", err)
	}

	navCtx, cancelNav := context.WithTimeout(tabCtx, req.navTimeout())
	err := chromedp.Run(navCtx, chromedp.Navigate(req.URL))
	cancelNav()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("navigating to %s: %w", req.URL, err)
	}

	ready := len(req.Waits) == 0
	for _, w := range req.Waits {
		waitCtx, cancelWait := context.WithTimeout(tabCtx, req.waitTimeout(w))
		err := chromedp.Run(waitCtx, chromedp.WaitVisible(w.Selector, chromedp.ByQuery))
		cancelWait()
		if err == nil {
			ready = true
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}

	page := &Page{Ready: ready}
	if err := chromedp.Run(tabCtx,
		chromedp.Location(&page.URL),
		chromedp.OuterHTML("html", &page.HTML, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("reading document from %s: %w", req.URL, err)
	}

	return page, nil
}

// Close stops the browser process. It is safe to call more than once.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browserCtx == nil {
		return nil
	}

	c.cancelBrowser()
	c.cancelAlloc()
	c.browserCtx = nil
	c.cancelBrowser = nil
	c.cancelAlloc = nil
	c.logger.Info("browser session closed")
	return nil
}
