package config

import "time"

// Config holds runtime settings for the expense tracker client.
//
// Units: RequestTimeout and NotificationDelay are time.Duration values.
// A zero RequestTimeout disables the client-side timeout.
type Config struct {
	ServerBaseURL     string
	DatabasePath      string
	LogLevel          string
	RequestTimeout    time.Duration
	NotificationDelay time.Duration
	AssumeYes         bool

	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.DatabasePath = "expenses.db"
	c.LogLevel = "info"
	c.RequestTimeout = 0
	c.NotificationDelay = 3 * time.Second
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
