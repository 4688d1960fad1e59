package cmd

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/tablewatch/api/openapi"
	"github.com/donaldgifford/tablewatch/internal/api/handlers"
	"github.com/donaldgifford/tablewatch/internal/api/middleware"
	"github.com/donaldgifford/tablewatch/internal/browser"
	"github.com/donaldgifford/tablewatch/internal/config"
	"github.com/donaldgifford/tablewatch/internal/engine"
	"github.com/donaldgifford/tablewatch/internal/notify"
	"github.com/donaldgifford/tablewatch/internal/platform"
	"github.com/donaldgifford/tablewatch/internal/store"
	"github.com/donaldgifford/tablewatch/pkg/logger"
)

// newSession returns the page renderer selected by browser.mode. The session
// is not opened here.
func newSession(cfg *config.BrowserConfig, log *slog.Logger) browser.Session {
	if cfg.Mode == config.BrowserModeHTTP {
		return browser.NewHTTP(browser.WithHTTPUserAgent(cfg.UserAgent))
	}

	opts := []browser.ChromeOption{
		browser.WithHeadless(cfg.IsHeadless()),
		browser.WithUserAgent(cfg.UserAgent),
		browser.WithChromeLogger(logger.Component(log, "browser")),
	}
	if cfg.ExecPath != "" {
		opts = append(opts, browser.WithExecPath(cfg.ExecPath))
	}
	return browser.NewChrome(opts...)
}

// newRegistry builds both platform scrapers on one session. They share a
// single fetch pacer so the minimum spacing holds across platforms.
func newRegistry(cfg *config.Config, session browser.Session, log *slog.Logger) *platform.Registry {
	pacer := platform.NewPacer(
		cfg.Browser.FetchJitter.Min,
		cfg.Browser.FetchJitter.Max,
		cfg.Browser.MinInterval,
	)
	common := []platform.Option{
		platform.WithPacer(pacer),
		platform.WithTimeouts(cfg.Browser.NavTimeout, cfg.Browser.WaitTimeout),
		platform.WithLogger(logger.Component(log, "platform")),
	}

	resy := platform.NewResy(session, append([]platform.Option{
		platform.WithBaseURL(cfg.Platforms.Resy.BaseURL),
		platform.WithRegion(cfg.Platforms.Resy.Region),
	}, common...)...)
	openTable := platform.NewOpenTable(session, append([]platform.Option{
		platform.WithBaseURL(cfg.Platforms.OpenTable.BaseURL),
		platform.WithRegion(cfg.Platforms.OpenTable.MetroID),
	}, common...)...)

	return platform.NewRegistry(resy, openTable)
}

// newDispatcher wires the configured notification backends. Channels with
// no credentials fall back to log-only notifiers inside the dispatcher.
func newDispatcher(cfg *config.NotificationsConfig, log *slog.Logger) *notify.Dispatcher {
	log = logger.Component(log, "notify")
	opts := []notify.DispatcherOption{notify.WithLogger(log)}

	if cfg.SendGrid.APIKey != "" {
		opts = append(opts, notify.WithEmailNotifier(
			notify.NewSendGridNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName),
		))
	} else {
		log.Info("sendgrid not configured, email alerts are log-only")
	}

	if cfg.Twilio.Enabled() {
		opts = append(opts, notify.WithSMSNotifier(
			notify.NewTwilioNotifier(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber),
		))
	} else {
		log.Info("twilio not configured, SMS alerts are log-only")
	}

	if cfg.Discord.Enabled {
		opts = append(opts, notify.WithFanout(notify.NewDiscordNotifier(cfg.Discord.WebhookURL)))
	}

	return notify.NewDispatcher(opts...)
}

func newEngine(cfg *config.Config, s store.Store, session browser.Session, log *slog.Logger) *engine.Engine {
	return engine.NewEngine(
		s,
		newRegistry(cfg, session, log),
		newDispatcher(&cfg.Notifications, log),
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithTargetDelay(cfg.Schedule.TargetDelay),
		engine.WithDatePacer(platform.NewPacer(cfg.Browser.DateJitter.Min, cfg.Browser.DateJitter.Max, 0)),
		engine.WithDedupWindow(cfg.Schedule.DedupWindow),
		engine.WithMaxDates(cfg.Schedule.MaxDates),
	)
}

// sweepService is the scheduler as seen by the HTTP layer.
type sweepService interface {
	handlers.Sweeper
	handlers.SweepStatus
	Ready(ctx context.Context) error
}

// newServer builds the echo server with the middleware stack, health and
// metrics endpoints, Swagger UI and every API operation.
func newServer(cfg *config.Config, s store.Store, sweeper sweepService, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.Component(log, "http")
	e.Use(middleware.Recovery(httpLog))
	e.Use(middleware.Tracing())
	e.Use(middleware.RequestLog(httpLog))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(s, handlers.ReadinessCheck{Name: "scheduler", Check: sweeper.Ready})
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	humaCfg := huma.DefaultConfig("Table Watch API", Version)
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)

	handlers.RegisterRestaurantRoutes(api, handlers.NewRestaurantHandler(s))
	handlers.RegisterWatchRoutes(api, handlers.NewWatchHandler(s))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(s))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(s, sweeper))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(s, sweeper))
	handlers.RegisterSweepRoutes(api, handlers.NewSweepHandler(sweeper))

	return e
}
