package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"tiffin/internal/config"
)

// LoadConfig reads configuration from a yaml file when one exists at path,
// falling back to environment configuration otherwise.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
