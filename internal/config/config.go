// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint = "https://randomuser.me/api/"
	DefaultResults  = 100
	DefaultTimeout  = 30 * time.Second
	DefaultLocale   = "und"
	DefaultLogName  = "userlist.log"

	// EndpointEnvVar overrides the endpoint from the config file.
	EndpointEnvVar = "USERLIST_ENDPOINT"
)

// FileNames are tried in order when no explicit config path is given.
var FileNames = []string{"userlist.yml", "userlist.yaml"}

// Config holds settings read from userlist.yml. Zero fields fall back to
// the defaults above.
type Config struct {
	Endpoint string        `yaml:"endpoint,omitempty"`
	Results  int           `yaml:"results,omitempty"`
	Seed     string        `yaml:"seed,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
	Input    string        `yaml:"input,omitempty"` // read a saved response instead of fetching
	Locale   string        `yaml:"locale,omitempty"`
	LogFile  string        `yaml:"logFile,omitempty"`
	Colors   bool          `yaml:"colors,omitempty"` // start with row colors on
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Results:  DefaultResults,
		Timeout:  DefaultTimeout,
		Locale:   DefaultLocale,
	}
}

// Load reads the config at path. With an empty path it looks for one of
// FileNames in dir and returns the defaults (not an error) if none exists.
// The endpoint env var is applied last.
func Load(path, dir string) (*Config, error) {
	cfg := Default()
	if path == "" {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		log.Printf("[CONFIG] Loaded configuration from %s", path)
	}
	if env := os.Getenv(EndpointEnvVar); env != "" {
		cfg.Endpoint = env
	}
	cfg.fillDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) fillDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Results == 0 {
		c.Results = DefaultResults
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
}

// Validate rejects values the fetcher cannot use.
func (c *Config) Validate() error {
	if c.Results <= 0 {
		return fmt.Errorf("config: results must be positive, got %d", c.Results)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// LogPath is where the TUI writes its log when no log file is configured.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(os.TempDir(), DefaultLogName)
}
