package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDB = `
database:
  host: localhost
  name: testdb
  user: testuser
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)

				assert.Equal(t, 15*time.Minute, cfg.Schedule.SweepInterval)
				assert.Equal(t, 5*time.Second, cfg.Schedule.TargetDelay)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.DedupWindow)
				assert.Equal(t, 7, cfg.Schedule.MaxDates)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.LockTTL)

				assert.Equal(t, BrowserModeChrome, cfg.Browser.Mode)
				assert.True(t, cfg.Browser.IsHeadless())
				assert.NotEmpty(t, cfg.Browser.UserAgent)
				assert.Equal(t, 30*time.Second, cfg.Browser.NavTimeout)
				assert.Equal(t, 10*time.Second, cfg.Browser.WaitTimeout)
				assert.Equal(t, JitterConfig{Min: time.Second, Max: 3 * time.Second}, cfg.Browser.FetchJitter)
				assert.Equal(t, JitterConfig{Min: 2 * time.Second, Max: 5 * time.Second}, cfg.Browser.DateJitter)

				assert.Equal(t, "https://resy.com", cfg.Platforms.Resy.BaseURL)
				assert.Equal(t, "ny", cfg.Platforms.Resy.Region)
				assert.Equal(t, "https://www.opentable.com", cfg.Platforms.OpenTable.BaseURL)
				assert.Equal(t, "8", cfg.Platforms.OpenTable.MetroID)

				assert.Equal(t, "Table Watch", cfg.Notifications.SendGrid.FromName)
				assert.False(t, cfg.Notifications.Twilio.Enabled())
				assert.Equal(t, "tablewatch", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0)
				assert.Equal(t, 30*time.Second, cfg.Telemetry.MetricInterval)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDB + `
  password: "${TEST_DB_PASSWORD}"
notifications:
  sendgrid:
    api_key: "${TEST_SENDGRID_KEY}"
    from_email: alerts@example.com
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD":  "secret123",
				"TEST_SENDGRID_KEY": "SG.abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "SG.abc", cfg.Notifications.SendGrid.APIKey)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "sweep interval too short",
			yaml: minimalDB + `
schedule:
  sweep_interval: 10s
`,
			wantErr: "schedule.sweep_interval must be at least 1m",
		},
		{
			name: "invalid browser mode",
			yaml: minimalDB + `
browser:
  mode: firefox
`,
			wantErr: `browser.mode must be one of: chrome, http (got "firefox")`,
		},
		{
			name: "inverted jitter range",
			yaml: minimalDB + `
browser:
  fetch_jitter:
    min: 5s
    max: 1s
`,
			wantErr: "browser.fetch_jitter must satisfy 0 <= min <= max",
		},
		{
			name: "sendgrid key without sender",
			yaml: minimalDB + `
notifications:
  sendgrid:
    api_key: SG.abc
`,
			wantErr: "notifications.sendgrid.from_email is required",
		},
		{
			name: "discord enabled without webhook",
			yaml: minimalDB + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name:    "multiple errors are joined",
			yaml:    "database: {}\n",
			wantErr: "database.host is required\ndatabase.name is required\ndatabase.user is required",
		},
		{
			name:    "invalid YAML",
			yaml:    "database: [unclosed",
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: tablewatch
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
schedule:
  sweep_interval: 30m
  target_delay: 2s
  dedup_window: 12h
  max_dates: 3
  lock_ttl: 1h
browser:
  mode: http
  headless: false
  user_agent: test-agent
  nav_timeout: 15s
  wait_timeout: 5s
  fetch_jitter:
    min: 0s
    max: 500ms
  date_jitter:
    min: 100ms
    max: 200ms
  min_interval: 250ms
platforms:
  resy:
    base_url: http://localhost:9000/resy
    region: sf
  opentable:
    base_url: http://localhost:9000/opentable
    metro_id: "4"
notifications:
  sendgrid:
    api_key: SG.key
    from_email: alerts@example.com
    from_name: Alerts
  twilio:
    account_sid: AC123
    auth_token: token
    from_number: "+15550000000"
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
telemetry:
  otlp_endpoint: otel-collector:4317
  insecure: true
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.SweepInterval)
				assert.Equal(t, 2*time.Second, cfg.Schedule.TargetDelay)
				assert.Equal(t, 12*time.Hour, cfg.Schedule.DedupWindow)
				assert.Equal(t, 3, cfg.Schedule.MaxDates)
				assert.Equal(t, time.Hour, cfg.Schedule.LockTTL)
				assert.Equal(t, BrowserModeHTTP, cfg.Browser.Mode)
				assert.False(t, cfg.Browser.IsHeadless())
				assert.Equal(t, "test-agent", cfg.Browser.UserAgent)
				assert.Equal(t, JitterConfig{Max: 500 * time.Millisecond}, cfg.Browser.FetchJitter)
				assert.Equal(t, 100*time.Millisecond, cfg.Browser.DateJitter.Min)
				assert.Equal(t, 250*time.Millisecond, cfg.Browser.MinInterval)
				assert.Equal(t, "sf", cfg.Platforms.Resy.Region)
				assert.Equal(t, "4", cfg.Platforms.OpenTable.MetroID)
				assert.Equal(t, "Alerts", cfg.Notifications.SendGrid.FromName)
				assert.True(t, cfg.Notifications.Twilio.Enabled())
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.OTLPEndpoint)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TW_TEST_DOTENV=from-file\nTW_TEST_PRESET=from-file\n"), 0o644))

	t.Setenv("TW_TEST_PRESET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("TW_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("TW_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("TW_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
				PoolSize: 10,
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable pool_max_conns=10",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "tablewatch",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
				PoolSize: 20,
			},
			want: "host=db.example.com port=5433 dbname=tablewatch user=admin password=s3cret sslmode=require pool_max_conns=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
