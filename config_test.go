package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Environment(t *testing.T) {
	t.Setenv(envProvider, "difflib")
	t.Setenv(envStyle, "dracula")

	cfg := DefaultConfig()
	assert.Equal(t, "difflib", cfg.Provider)
	assert.Equal(t, "dracula", cfg.Style)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(envProvider, "")
	t.Setenv(envStyle, "")

	cfg := DefaultConfig()
	assert.Equal(t, defaultProviderName, cfg.Provider)
	assert.Equal(t, defaultStyle, cfg.Style)
	assert.NoError(t, cfg.Validate(nil))
}

func TestConfig_Validate(t *testing.T) {
	base := Config{Provider: "myers", Style: "monokai", LogLevel: "info"}

	tests := []struct {
		name    string
		modify  func(c *Config)
		args    []string
		wantErr string
	}{
		{"valid", func(c *Config) {}, nil, ""},
		{"rev and patch", func(c *Config) { c.Rev, c.Patch = "HEAD", "x.patch" }, nil, "cannot be combined"},
		{"exit code without print", func(c *Config) { c.ExitCode = true }, nil, "requires --print"},
		{"exit code with print", func(c *Config) { c.ExitCode, c.Print = true, true }, nil, ""},
		{"negative width", func(c *Config) { c.Width = -1 }, nil, "negative"},
		{"watch with print", func(c *Config) { c.Watch, c.Print = true, true }, nil, "--watch"},
		{"watch stdin", func(c *Config) { c.Watch = true }, []string{"-", "b"}, "stdin"},
		{"watch files", func(c *Config) { c.Watch = true }, []string{"a", "b"}, ""},
		{"unknown provider", func(c *Config) { c.Provider = "patience" }, nil, "unknown provider"},
		{"unknown style", func(c *Config) { c.Style = "no-such-style" }, nil, "unknown style"},
		{"fallback style by name", func(c *Config) { c.Style = "swapoff" }, nil, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, nil, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)

			err := cfg.Validate(tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
