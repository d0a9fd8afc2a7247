package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultPort is used when PORT is unset or not a usable port number.
const DefaultPort = 3000

// PortEnv is the environment variable holding the listen port.
const PortEnv = "PORT"

// Config represents the process configuration. It is read once at startup
// and never changes afterwards.
type Config struct {
	Port int
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{Port: DefaultPort}
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := Default()

	raw, ok := os.LookupEnv(PortEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return cfg
	}

	port, err := parsePort(raw)
	if err != nil {
		slog.Warn("invalid port, using default", "env", PortEnv, "value", raw, "default", DefaultPort, "error", err)
		return cfg
	}
	cfg.Port = port
	return cfg
}

// Addr returns the listen address on all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}
	return port, nil
}
