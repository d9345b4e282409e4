package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("crystal_strength: 4\nmessage: hi\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		TargetCount:     3,
		EggStrength:     1,
		CrystalStrength: 4,
		Message:         "hi",
	}, cfg)

	cfg, err = ParseConfig([]byte("message: |\n  gl hf\n"))
	require.NoError(t, err)
	assert.Equal(t, "gl hf", cfg.Message)

	cfg, err = ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigInvalid(t *testing.T) {
	for _, doc := range []string{
		"target_count: 0",
		"egg_strength: -1",
		"crystal_strength: 0",
		"target_count: [1, 2]",
		"message: gl;WAIT",
		"message: \"two\\nlines\"",
	} {
		_, err := ParseConfig([]byte(doc))
		assert.True(t, errors.Is(err, ErrInvalidConfig), doc)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_count: 5\n"), 0644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TargetCount)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
