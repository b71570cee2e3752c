package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   backend base URL
//	-d string   local database path
//	-l string   log level (debug, info, warn, error)
//	-t int      request timeout in seconds, 0 disables it
//	-y          answer yes to confirmation prompts
func parseFlags(cfg *Config) {
	args := flagx.FilterArgsWithSwitches(os.Args[1:], []string{"-a", "-d", "-l", "-t"}, []string{"-y"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.AssumeYes, "y", cfg.AssumeYes, "assume yes on confirmations")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
