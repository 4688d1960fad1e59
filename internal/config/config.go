// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Browser modes.
const (
	BrowserModeChrome = "chrome"
	BrowserModeHTTP   = "http"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Browser       BrowserConfig       `yaml:"browser"`
	Platforms     PlatformsConfig     `yaml:"platforms"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// ScheduleConfig defines the sweep cadence and pacing.
type ScheduleConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval"` // default: 15m
	TargetDelay   time.Duration `yaml:"target_delay"`   // default: 5s
	DedupWindow   time.Duration `yaml:"dedup_window"`   // default: 24h
	MaxDates      int           `yaml:"max_dates"`      // default: 7
	LockTTL       time.Duration `yaml:"lock_ttl"`       // default: 30m
}

// BrowserConfig defines how booking pages are rendered.
type BrowserConfig struct {
	Mode        string        `yaml:"mode"` // chrome, http
	Headless    *bool         `yaml:"headless"`
	UserAgent   string        `yaml:"user_agent"`
	ExecPath    string        `yaml:"exec_path"`
	NavTimeout  time.Duration `yaml:"nav_timeout"`
	WaitTimeout time.Duration `yaml:"wait_timeout"`
	FetchJitter JitterConfig  `yaml:"fetch_jitter"`
	DateJitter  JitterConfig  `yaml:"date_jitter"`
	// MinInterval is the minimum spacing between any two page fetches.
	MinInterval time.Duration `yaml:"min_interval"`
}

// IsHeadless reports whether Chrome runs without a window. Defaults to true.
func (b *BrowserConfig) IsHeadless() bool {
	return b.Headless == nil || *b.Headless
}

// JitterConfig is a randomized delay range.
type JitterConfig struct {
	Min time.Duration `yaml:"min"`
	Max time.Duration `yaml:"max"`
}

// PlatformsConfig defines per-platform endpoints.
type PlatformsConfig struct {
	Resy      ResyConfig      `yaml:"resy"`
	OpenTable OpenTableConfig `yaml:"opentable"`
}

// ResyConfig defines Resy settings.
type ResyConfig struct {
	BaseURL string `yaml:"base_url"`
	Region  string `yaml:"region"`
}

// OpenTableConfig defines OpenTable settings.
type OpenTableConfig struct {
	BaseURL string `yaml:"base_url"`
	MetroID string `yaml:"metro_id"`
}

// NotificationsConfig defines notification channels.
type NotificationsConfig struct {
	SendGrid SendGridConfig `yaml:"sendgrid"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Discord  DiscordConfig  `yaml:"discord"`
}

// SendGridConfig defines SendGrid email settings. An empty APIKey leaves the
// email channel in log-only mode.
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// TwilioConfig defines Twilio SMS settings. Missing credentials leave the SMS
// channel in log-only mode.
type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

// Enabled reports whether all Twilio credentials are present.
func (t *TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines OpenTelemetry export settings. An empty
// OTLPEndpoint disables export.
type TelemetryConfig struct {
	OTLPEndpoint   string        `yaml:"otlp_endpoint"`
	ServiceName    string        `yaml:"service_name"`
	Insecure       bool          `yaml:"insecure"`
	SampleRatio    float64       `yaml:"sample_ratio"`    // default: 1.0
	MetricInterval time.Duration `yaml:"metric_interval"` // default: 30s
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding values that are already set. Missing files
// are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyScheduleDefaults(&cfg.Schedule)
	applyBrowserDefaults(&cfg.Browser)
	applyPlatformsDefaults(&cfg.Platforms)
	applyNotificationsDefaults(&cfg.Notifications)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SweepInterval == 0 {
		s.SweepInterval = 15 * time.Minute
	}
	if s.TargetDelay == 0 {
		s.TargetDelay = 5 * time.Second
	}
	if s.DedupWindow == 0 {
		s.DedupWindow = 24 * time.Hour
	}
	if s.MaxDates == 0 {
		s.MaxDates = 7
	}
	if s.LockTTL == 0 {
		s.LockTTL = 30 * time.Minute
	}
}

func applyBrowserDefaults(b *BrowserConfig) {
	if b.Mode == "" {
		b.Mode = BrowserModeChrome
	}
	if b.UserAgent == "" {
		b.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if b.NavTimeout == 0 {
		b.NavTimeout = 30 * time.Second
	}
	if b.WaitTimeout == 0 {
		b.WaitTimeout = 10 * time.Second
	}
	if b.FetchJitter == (JitterConfig{}) {
		b.FetchJitter = JitterConfig{Min: time.Second, Max: 3 * time.Second}
	}
	if b.DateJitter == (JitterConfig{}) {
		b.DateJitter = JitterConfig{Min: 2 * time.Second, Max: 5 * time.Second}
	}
	if b.MinInterval == 0 {
		b.MinInterval = time.Second
	}
}

func applyPlatformsDefaults(p *PlatformsConfig) {
	if p.Resy.BaseURL == "" {
		p.Resy.BaseURL = "https://resy.com"
	}
	if p.Resy.Region == "" {
		p.Resy.Region = "ny"
	}
	if p.OpenTable.BaseURL == "" {
		p.OpenTable.BaseURL = "https://www.opentable.com"
	}
	if p.OpenTable.MetroID == "" {
		p.OpenTable.MetroID = "8"
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.SendGrid.FromName == "" {
		n.SendGrid.FromName = "Table Watch"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "tablewatch"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Schedule.SweepInterval < time.Minute {
		errs = append(errs, fmt.Errorf("schedule.sweep_interval must be at least 1m (got %s)", cfg.Schedule.SweepInterval))
	}
	if cfg.Schedule.TargetDelay < 0 {
		errs = append(errs, fmt.Errorf("schedule.target_delay must not be negative"))
	}
	if cfg.Schedule.MaxDates < 0 {
		errs = append(errs, fmt.Errorf("schedule.max_dates must not be negative"))
	}

	switch cfg.Browser.Mode {
	case BrowserModeChrome, BrowserModeHTTP:
	default:
		errs = append(
			errs,
			fmt.Errorf("browser.mode must be one of: chrome, http (got %q)", cfg.Browser.Mode),
		)
	}
	errs = append(errs, validateJitter("browser.fetch_jitter", cfg.Browser.FetchJitter))
	errs = append(errs, validateJitter("browser.date_jitter", cfg.Browser.DateJitter))

	if cfg.Notifications.SendGrid.APIKey != "" && cfg.Notifications.SendGrid.FromEmail == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.sendgrid.from_email is required when api_key is set"),
		)
	}
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if r := cfg.Telemetry.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1 (got %g)", r))
	}

	return errors.Join(errs...)
}

func validateJitter(name string, j JitterConfig) error {
	if j.Min < 0 || j.Max < j.Min {
		return fmt.Errorf("%s must satisfy 0 <= min <= max (got %s..%s)", name, j.Min, j.Max)
	}
	return nil
}
