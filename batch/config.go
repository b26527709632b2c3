package batch

import (
	"errors"
	"fmt"
	"os"

	"github.com/garlicgarrison/knight-path/knight"
	"gopkg.in/yaml.v2"
)

var (
	ErrEmptyConfig = errors.New("config has no queries")
)

type Query struct {
	Start knight.Coordinate `yaml:"start"`
	End   knight.Coordinate `yaml:"end"`
}

type Config struct {
	Queries []Query `yaml:"queries"`
}

func ParseConfig(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Queries) == 0 {
		return nil, ErrEmptyConfig
	}
	return &cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(b)
}
