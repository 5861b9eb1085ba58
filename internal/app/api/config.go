package api

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.temporal.io/sdk/client"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the optional YAML or JSON file read before the environment.
const ConfigFileEnv = "PETSTORE_CONFIG"

var ErrConfigFileNotFound = errors.New("configuration file not found")

// Config carries the settings for the API process. Environment variables override the file.
type Config struct {
	Port        string         `yaml:"port"`
	PostgresDSN string         `yaml:"postgres_dsn"`
	Temporal    TemporalConfig `yaml:"temporal"`
	Metrics     bool           `yaml:"metrics_enabled"`
	GinMode     string         `yaml:"gin_mode"`
	LogLevel    string         `yaml:"log_level"`
}

// TemporalConfig selects the cluster running the pet creation workflow.
type TemporalConfig struct {
	Address   string `yaml:"address"`
	Namespace string `yaml:"namespace"`
	Disabled  bool   `yaml:"disabled"`
}

// DefaultConfig returns the settings used when neither file nor environment say otherwise.
func DefaultConfig() Config {
	return Config{
		Port: "8080",
		Temporal: TemporalConfig{
			Address:   client.DefaultHostPort,
			Namespace: client.DefaultNamespace,
		},
		Metrics: true,
		GinMode: gin.ReleaseMode,
	}
}

// LoadConfig reads the file named by PETSTORE_CONFIG, applies environment overrides and validates.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release or test, got %q", c.GinMode)
	}
	return nil
}

// loadFile decodes YAML or JSON; yaml.v3 accepts both.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		return value, ok && value != ""
	}
	if v, ok := get("PORT"); ok {
		c.Port = v
	}
	if v, ok := get("POSTGRES_DSN"); ok {
		c.PostgresDSN = v
	}
	if v, ok := get("TEMPORAL_ADDRESS"); ok {
		c.Temporal.Address = v
	}
	if v, ok := get("TEMPORAL_NAMESPACE"); ok {
		c.Temporal.Namespace = v
	}
	if v, ok := get("TEMPORAL_DISABLED"); ok {
		c.Temporal.Disabled = isTruthy(v)
	}
	if v, ok := get("METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("METRICS_ENABLED must be a boolean, got %q", v)
		}
		c.Metrics = enabled
	}
	if v, ok := get("GIN_MODE"); ok {
		c.GinMode = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
