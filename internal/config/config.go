// Package config provides reading of the analytics-mcp server configuration.
// Configuration lives in ~/.analytics-mcp/config.yaml; the PORT and HOST
// environment variables override the file (the contract the original Cloud
// Run deployment relied on), and command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither file nor environment configures a value.
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080
)

// Server holds HTTP front-door settings.
type Server struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Auth holds credential-resolution settings.
type Auth struct {
	// AllowDefaultCredentials permits HTTP requests without a bearer token
	// to fall back to application default credentials. Off by default: in a
	// multi-user deployment an unauthenticated request must not silently
	// act as the server's own identity.
	AllowDefaultCredentials bool `yaml:"allow_default_credentials,omitempty"`
}

// Config contains configuration for analytics-mcp.
type Config struct {
	Server Server `yaml:"server,omitempty"`
	Auth   Auth   `yaml:"auth,omitempty"`
}

// path returns the config file location. Overridable in tests.
var path = defaultPath

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".analytics-mcp", "config.yaml"), nil
}

// Load reads the config file and applies environment overrides.
// A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{Host: DefaultHost, Port: DefaultPort},
	}

	p, err := path()
	if err == nil {
		data, readErr := os.ReadFile(p)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", p, err)
			}
			if cfg.Server.Host == "" {
				cfg.Server.Host = DefaultHost
			}
			if cfg.Server.Port == 0 {
				cfg.Server.Port = DefaultPort
			}
		case errors.Is(readErr, fs.ErrNotExist):
			// no file, defaults apply
		default:
			return nil, readErr
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 || n > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.Server.Port = n
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP front door.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
