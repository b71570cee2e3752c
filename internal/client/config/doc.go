// Package config loads runtime configuration for the expense tracker client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables with the EXPENSES_ prefix, after loading an
//     optional .env file from the working directory.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL (default http://localhost:8080/api)
//	-d string   local database path (default expenses.db)
//	-l string   log level
//	-t int      request timeout in seconds (0 = none)
//	-y          assume yes on confirmation prompts
//
// # Environment
//
//	EXPENSES_SERVER_URL, EXPENSES_DB_PATH, EXPENSES_LOG_LEVEL,
//	EXPENSES_REQUEST_TIMEOUT, EXPENSES_NOTIFICATION_DELAY, EXPENSES_ASSUME_YES,
//	EXPENSES_S3_REGION, EXPENSES_S3_ENDPOINT, EXPENSES_S3_ACCESS_KEY,
//	EXPENSES_S3_SECRET_KEY
//
// Durations use Go syntax ("1500ms", "3s").
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:8080/api",
//	  "database_path": "expenses.db",
//	  "log_level": "debug",
//	  "request_timeout": "10s",
//	  "notification_delay": "3s",
//	  "assume_yes": false,
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://127.0.0.1:9000"
//	}
//
// Durations in JSON may also be integer nanoseconds.
package config
