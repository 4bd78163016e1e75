package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/udharoguru/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling the config file.
// Absent keys leave the current value alone.
type JsonConfig struct {
	ServerBaseURL    string          `json:"server_base_url"`
	DatabasePath     string          `json:"database_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	ChatPollInterval *timex.Duration `json:"chat_poll_interval"`
	LogLevel         string          `json:"log_level"`
	LogFormat        string          `json:"log_format"`
	TokenPassphrase  string          `json:"token_passphrase"`
	Ephemeral        *bool           `json:"ephemeral"`
}

// parseJSON overlays cfg with the JSON file at path; an empty path is a
// no-op.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ChatPollInterval != nil {
		cfg.ChatPollInterval = jc.ChatPollInterval.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if jc.TokenPassphrase != "" {
		cfg.TokenPassphrase = jc.TokenPassphrase
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
	return nil
}
