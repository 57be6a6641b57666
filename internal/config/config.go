// Package config resolves arrayctl settings from flags and the environment.
// Flags win over the environment, the environment wins over defaults.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	EnvFormat   = "ARRAYCTL_FORMAT"
	EnvLogLevel = "ARRAYCTL_LOG_LEVEL"
	EnvNoColor  = "ARRAYCTL_NO_COLOR"
)

// Flags holds the raw command line values. Empty strings and nil pointers mean "not set".
type Flags struct {
	Format   string
	LogLevel string
	NoColor  *bool
}

type Config struct {
	// Format forces the scenario decoder ("toml" or "yaml"); empty means
	// detect from the file extension.
	Format   string
	LogLevel zerolog.Level
	NoColor  bool
}

// GetEnvOr returns the value of key from getenv, or fallback when it is empty.
func GetEnvOr(getenv func(string) string, key string, fallback string) string {
	value := getenv(key)
	if value == "" {
		value = fallback
	}
	return value
}

// New builds a Config. getenv is usually os.Getenv.
func New(flags Flags, getenv func(string) string) (*Config, error) {
	format := strings.ToLower(firstNonEmpty(flags.Format, getenv(EnvFormat)))
	switch format {
	case "", "toml", "yaml":
	case "yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("invalid format %q", format)
	}

	level, err := zerolog.ParseLevel(firstNonEmpty(flags.LogLevel, GetEnvOr(getenv, EnvLogLevel, "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var noColor bool
	if flags.NoColor != nil {
		noColor = *flags.NoColor
	} else if raw := getenv(EnvNoColor); raw != "" {
		noColor, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvNoColor, err)
		}
	}

	return &Config{
		Format:   format,
		LogLevel: level,
		NoColor:  noColor,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
