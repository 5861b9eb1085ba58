package harness

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the suite looks for its settings.
const DefaultConfigPath = "config/config.json"

// Config points the suite at a running API.
type Config struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	LogDir  string `yaml:"log_dir" json:"log_dir"`
}

// LoadConfig reads a JSON or YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read harness config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse harness config %s: %w", path, err)
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("harness config %s: base_url is required", path)
	}
	return cfg, nil
}
