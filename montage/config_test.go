package montage

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestConfigValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero thumbnails", func(c *Config) { c.Thumbnails = 0 }, "thumbnails"},
		{"negative thumbnails", func(c *Config) { c.Thumbnails = -5 }, "thumbnails"},
		{"zero thumbsize", func(c *Config) { c.ThumbSize = 0 }, "thumbsize"},
		{"negative start", func(c *Config) { c.StartSeconds = -1 }, "start-seconds"},
		{"unknown format", func(c *Config) { c.Format = "bmp" }, "format"},
		{"empty format", func(c *Config) { c.Format = "" }, "format"},
		{"negative timeout", func(c *Config) { c.ToolTimeout = -time.Second }, "tool-timeout"},
		{"empty background", func(c *Config) { c.BackgroundColor = "" }, "background-color"},
		{"empty label color", func(c *Config) { c.LabelColor = "" }, "label-color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected a validation error, got nil")
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected error on field %q, got %q", tt.field, cfgErr.Field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Error message should name the field, got: %v", err)
			}
		})
	}
}

func TestConfigValidate_AcceptsAllFormats(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatGIF, FormatJPG} {
		cfg := DefaultConfig()
		cfg.Format = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("Format %s should validate, got %v", format, err)
		}
	}
}
