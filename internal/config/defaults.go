package config

import "github.com/AndreyAkinshin/rarlens/internal/rar"

// Default configuration values.
const (
	DefaultTaskName = rar.TaskName
	DefaultFormat   = FormatText

	// FormatEnvVar overrides output.format when set.
	FormatEnvVar = "RARLENS_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyAnalysisDefaults(cfg)
	applyOutputDefaults(cfg)
}

func applyAnalysisDefaults(cfg *Config) {
	if cfg.Analysis == nil {
		cfg.Analysis = &AnalysisConfig{}
	}
	if len(cfg.Analysis.TaskNames) == 0 {
		cfg.Analysis.TaskNames = []string{DefaultTaskName}
	}
}

func applyOutputDefaults(cfg *Config) {
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
}

// ApplyEnv overrides configuration values from the environment.
// getenv is usually os.Getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if format := getenv(FormatEnvVar); format != "" {
		if cfg.Output == nil {
			cfg.Output = &OutputConfig{}
		}
		cfg.Output.Format = format
	}
}
