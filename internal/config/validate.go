package config

import (
	"fmt"
	"strings"
)

// FieldError is a validation failure for one dotted config field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a config.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Validate returns a ValidationError listing all invalid fields, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	if !oneOf(strings.ToLower(cfg.Logging.Level), validLevels) {
		errs = append(errs, FieldError{"logging.level", fmt.Sprintf("must be one of %v, got %q", validLevels, cfg.Logging.Level)})
	}
	if !oneOf(strings.ToLower(cfg.Logging.Format), validFormats) {
		errs = append(errs, FieldError{"logging.format", fmt.Sprintf("must be one of %v, got %q", validFormats, cfg.Logging.Format)})
	}
	if cfg.Logging.MaxSizeMB < 0 {
		errs = append(errs, FieldError{"logging.maxSizeMB", "must not be negative"})
	}
	if cfg.Logging.MaxBackups < 0 {
		errs = append(errs, FieldError{"logging.maxBackups", "must not be negative"})
	}
	if cfg.Logging.MaxAgeDays < 0 {
		errs = append(errs, FieldError{"logging.maxAgeDays", "must not be negative"})
	}
	if cfg.Metrics.Textfile != "" && cfg.Metrics.Job == "" {
		errs = append(errs, FieldError{"metrics.job", "required when metrics.textfile is set"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
