// Package config loads runtime configuration for the UdharoGuru CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables UDHARO_*, optionally supplied by a .env file
//     selected with -e (or ./.env when present).
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "7s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000/api/",
//	  "database_path": "session.db",
//	  "request_timeout": "30s",
//	  "chat_poll_interval": "7s",
//	  "log_level": "debug",
//	  "log_format": "zerolog",
//	  "ephemeral": false
//	}
package config
