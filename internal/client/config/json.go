package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/expensetracker/internal/flagx"
	"github.com/dmitrijs2005/expensetracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL     string          `json:"server_base_url"`
	DatabasePath      string          `json:"database_path"`
	LogLevel          string          `json:"log_level"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	NotificationDelay *timex.Duration `json:"notification_delay"`
	AssumeYes         *bool           `json:"assume_yes"`
	S3Region          string          `json:"s3_region"`
	S3Endpoint        string          `json:"s3_endpoint"`
	S3AccessKey       string          `json:"s3_access_key"`
	S3SecretKey       string          `json:"s3_secret_key"`
}

// parseJson overlays Config with the fields present in the JSON file given
// by -c or -config. Absent fields keep their current value. Read or
// unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationDelay != nil {
		cfg.NotificationDelay = jc.NotificationDelay.Duration
	}
	if jc.AssumeYes != nil {
		cfg.AssumeYes = *jc.AssumeYes
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
