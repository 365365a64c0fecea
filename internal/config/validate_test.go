package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "uppercase level", mutate: func(c *Config) { c.Logging.Level = "DEBUG" }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantField: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "" }, wantField: "logging.format"},
		{name: "negative size", mutate: func(c *Config) { c.Logging.MaxSizeMB = -1 }, wantField: "logging.maxSizeMB"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantField: "logging.maxBackups"},
		{name: "negative age", mutate: func(c *Config) { c.Logging.MaxAgeDays = -1 }, wantField: "logging.maxAgeDays"},
		{
			name:      "textfile without job",
			mutate:    func(c *Config) { c.Metrics.Textfile = "/tmp/x.prom"; c.Metrics.Job = "" },
			wantField: "metrics.job",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Errors) != 1 || verr.Errors[0].Field != tt.wantField {
				t.Errorf("expected single error on %s, got %v", tt.wantField, verr.Errors)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Errors: []FieldError{
		{Field: "logging.level", Message: "bad"},
		{Field: "logging.format", Message: "worse"},
	}}
	msg := err.Error()
	if !strings.Contains(msg, "2 errors") || !strings.Contains(msg, "logging.format: worse") {
		t.Errorf("unexpected message: %q", msg)
	}
}
