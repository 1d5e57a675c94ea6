package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS   = 25
	DefaultTheme = "cyberpunk"
)

// Config describes an animation session. Width and Height of zero mean
// the size is detected from the terminal at startup.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Seed   int64  `yaml:"seed"`
	Theme  string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
