package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/flagx"
)

// Config holds runtime settings for the UdharoGuru CLI.
type Config struct {
	// ServerBaseURL is the API root, e.g. http://127.0.0.1:8000/api/.
	ServerBaseURL string
	// DatabasePath is the SQLite file holding the session tokens.
	DatabasePath     string
	RequestTimeout   time.Duration
	ChatPollInterval time.Duration
	LogLevel         string
	LogFormat        string
	// TokenPassphrase, when set, seals stored tokens at rest.
	TokenPassphrase string
	// Ephemeral keeps tokens in memory only.
	Ephemeral bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api/"
	c.DatabasePath = "session.db"
	c.RequestTimeout = 30 * time.Second
	c.ChatPollInterval = 7 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.TokenPassphrase = ""
	c.Ephemeral = false
}

// LoadConfig builds a Config from defaults, then the environment (and an
// optional .env file), then a JSON file, then command-line flags. Later
// sources win. args is the command line without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, flagx.EnvFileFlag(args)); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, flagx.ConfigFileFlag(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("server base url %q must be an absolute URL", c.ServerBaseURL))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.ChatPollInterval <= 0 {
		errs = append(errs, fmt.Errorf("chat poll interval must be positive, got %s", c.ChatPollInterval))
	}
	if !c.Ephemeral && c.DatabasePath == "" {
		errs = append(errs, errors.New("database path is required unless the session is ephemeral"))
	}
	return errors.Join(errs...)
}
