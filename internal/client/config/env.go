package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "EXPENSES_"

// parseEnv overlays Config with EXPENSES_* environment variables. A .env
// file in the working directory is loaded first; variables already set in
// the process environment win over it. Invalid values panic.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	str := map[string]*string{
		"SERVER_URL":    &cfg.ServerBaseURL,
		"DB_PATH":       &cfg.DatabasePath,
		"LOG_LEVEL":     &cfg.LogLevel,
		"S3_REGION":     &cfg.S3Region,
		"S3_ENDPOINT":   &cfg.S3Endpoint,
		"S3_ACCESS_KEY": &cfg.S3AccessKey,
		"S3_SECRET_KEY": &cfg.S3SecretKey,
	}
	for name, dst := range str {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"REQUEST_TIMEOUT":    &cfg.RequestTimeout,
		"NOTIFICATION_DELAY": &cfg.NotificationDelay,
	}
	for name, dst := range durations {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(fmt.Errorf("%s%s: %w", envPrefix, name, err))
			}
			*dst = d
		}
	}

	if v, ok := os.LookupEnv(envPrefix + "ASSUME_YES"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%sASSUME_YES: %w", envPrefix, err))
		}
		cfg.AssumeYes = b
	}
}
