package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/flagx"
)

var knownFlags = []string{
	"-a", "-d", "-t", "-i", "-l", "-log-format", "-ephemeral",
	"--log-format", "--ephemeral",
}

// parseFlags overlays cfg with command-line flags.
//
//	-a string       API base URL
//	-d string       session database path
//	-t int          request timeout (seconds)
//	-i int          chat poll interval (seconds)
//	-l string       log level
//	-log-format     text, json or zerolog
//	-ephemeral      keep tokens in memory only
//
// Other arguments (-c, -e, ...) are filtered out first so that each loader
// reads only its own flags.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("udharo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	poll := fs.Int("i", int(cfg.ChatPollInterval.Seconds()), "chat poll interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json or zerolog")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep tokens in memory only")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only touch durations that were given, so sub-second values from
	// other sources survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "i":
			cfg.ChatPollInterval = time.Duration(*poll) * time.Second
		}
	})
	return nil
}
