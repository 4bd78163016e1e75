package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvServerBaseURL    = "UDHARO_SERVER_URL"
	EnvDatabasePath     = "UDHARO_DB_PATH"
	EnvRequestTimeout   = "UDHARO_REQUEST_TIMEOUT"
	EnvChatPollInterval = "UDHARO_CHAT_POLL_INTERVAL"
	EnvLogLevel         = "UDHARO_LOG_LEVEL"
	EnvLogFormat        = "UDHARO_LOG_FORMAT"
	EnvTokenPassphrase  = "UDHARO_TOKEN_PASSPHRASE"
	EnvEphemeral        = "UDHARO_EPHEMERAL"
)

// parseEnv overlays cfg with UDHARO_* variables. Values from envFile (or
// ./.env when envFile is empty and the file exists) fill in variables the
// process environment does not set. The process environment is not
// modified.
func parseEnv(cfg *Config, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil {
			return fmt.Errorf("read env file %s: %w", envFile, err)
		}
		fileVars = m
	} else if m, err := godotenv.Read(); err == nil {
		fileVars = m
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvServerBaseURL); ok {
		cfg.ServerBaseURL = v
	}
	if v, ok := lookup(EnvDatabasePath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvTokenPassphrase); ok {
		cfg.TokenPassphrase = v
	}

	if v, ok := lookup(EnvRequestTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvChatPollInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvChatPollInterval, err)
		}
		cfg.ChatPollInterval = d
	}
	if v, ok := lookup(EnvEphemeral); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEphemeral, err)
		}
		cfg.Ephemeral = b
	}

	return nil
}
