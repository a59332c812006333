package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidFormats returns the supported output formats.
func ValidFormats() []string {
	return []string{FormatText, FormatYAML, FormatJSON}
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if cfg.Analysis != nil {
		w, err := validateAnalysis(cfg.Analysis)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, w...)
	}

	if cfg.Output != nil {
		if err := ValidateFormat(cfg.Output.Format); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}

func validateAnalysis(a *AnalysisConfig) ([]string, error) {
	var warnings []string
	seen := make(map[string]bool, len(a.TaskNames))
	for i, name := range a.TaskNames {
		if strings.TrimSpace(name) == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("analysis.task_names[%d]", i),
				Message: "must not be empty",
			}
		}
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("duplicate task name %q in analysis.task_names (ignored)", name))
		}
		seen[name] = true
	}
	return warnings, nil
}

// ValidateFormat checks that format is a supported output format.
// An empty format is accepted and means the default.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return &ValidationError{
		Field:   "output.format",
		Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(ValidFormats(), ", "), format),
	}
}
