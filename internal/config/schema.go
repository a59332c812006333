// Package config provides configuration loading and validation for .rarlens.json.
package config

// Config represents the complete .rarlens.json configuration.
type Config struct {
	Analysis *AnalysisConfig `json:"analysis,omitempty"`
	Output   *OutputConfig   `json:"output,omitempty"`
}

// AnalysisConfig selects which tasks are analyzed.
type AnalysisConfig struct {
	TaskNames []string `json:"task_names,omitempty"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format   string `json:"format,omitempty"`    // text, yaml or json
	ShowTree bool   `json:"show_tree,omitempty"` // Print the annotated tree after the text report
}
