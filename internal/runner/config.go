package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the optional YAML configuration file. Zero values leave the
// corresponding Args defaults alone.
type Config struct {
	MaxFixWidth int      `yaml:"max-fix-width"`
	Mode        string   `yaml:"mode"`
	License     string   `yaml:"license"`
	Packages    []string `yaml:"packages"`
}

func LoadConfig(path string) (Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return config, nil
}

// Apply copies the config's non-zero settings onto args.
func (c Config) Apply(args *Args) {
	if c.MaxFixWidth > 0 {
		args.MaxFixWidth = c.MaxFixWidth
	}
	if c.Mode != "" {
		args.Mode = c.Mode
	}
	if c.License != "" {
		args.License = c.License
	}
	if len(c.Packages) > 0 {
		args.Packages = c.Packages
	}
}
