package main // import "github.com/tonobo/hexants-go"

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	TargetCount     = 3
	EggStrength     = 1
	CrystalStrength = 2
)

var ErrInvalidConfig = errors.New("invalid config")

// Config tunes target selection. Keys left out of a tuning file keep the
// package defaults.
type Config struct {
	TargetCount     int    `yaml:"target_count"`
	EggStrength     int    `yaml:"egg_strength"`
	CrystalStrength int    `yaml:"crystal_strength"`
	Message         string `yaml:"message"`
}

func DefaultConfig() Config {
	return Config{
		TargetCount:     TargetCount,
		EggStrength:     EggStrength,
		CrystalStrength: CrystalStrength,
	}
}

func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.TargetCount < 1 {
		return Config{}, fmt.Errorf("%w: target_count %d", ErrInvalidConfig, cfg.TargetCount)
	}
	if cfg.EggStrength < 1 || cfg.CrystalStrength < 1 {
		return Config{}, fmt.Errorf("%w: strengths must be positive", ErrInvalidConfig)
	}
	// the message rides on the turn's single output line
	cfg.Message = strings.TrimSpace(cfg.Message)
	if strings.ContainsAny(cfg.Message, "\r\n;") {
		return Config{}, fmt.Errorf("%w: message %q breaks the output line", ErrInvalidConfig, cfg.Message)
	}
	return cfg, nil
}
