package config

import (
	"fmt"
	"math"
)

// Config holds the complete application configuration
type Config struct {
	Version   string          `yaml:"version" json:"version"`
	Input     InputConfig     `yaml:"input" json:"input"`
	Tokenizer TokenizerConfig `yaml:"tokenizer" json:"tokenizer"`
	Report    ReportConfig    `yaml:"report" json:"report"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// InputConfig configures where submissions are read from
type InputConfig struct {
	Directory   string   `yaml:"directory" json:"directory"`       // default submissions directory
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs"` // directory names skipped while scanning
}

// TokenizerConfig configures text normalization
type TokenizerConfig struct {
	ExtraStopWords []string `yaml:"extra_stopwords" json:"extra_stopwords"` // merged into the built-in stopword set
}

// ReportConfig configures report generation
type ReportConfig struct {
	Format     string  `yaml:"format" json:"format"`           // csv|json|text|markdown
	OutputFile string  `yaml:"output_file" json:"output_file"` // report destination for csv output
	Threshold  float64 `yaml:"threshold" json:"threshold"`     // plagiarism flagging threshold in [0,1]
}

// OutputConfig configures terminal output behavior
type OutputConfig struct {
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	Verbose   bool   `yaml:"verbose" json:"verbose"`       // default verbosity
}

// DefaultThreshold is the fallback plagiarism threshold.
const DefaultThreshold = 0.70

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			Directory:   "assignments",
			ExcludeDirs: []string{"node_modules", ".git", ".svn", "vendor"},
		},
		Tokenizer: TokenizerConfig{
			ExtraStopWords: []string{},
		},
		Report: ReportConfig{
			Format:     "csv",
			OutputFile: "plagiarism_report.csv",
			Threshold:  DefaultThreshold,
		},
		Output: OutputConfig{
			ColorMode: "auto",
			Verbose:   false,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateReportConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

func (c *Config) validateReportConfig() error {
	if c.Report.Format != "" {
		validFormats := map[string]bool{
			"csv":      true,
			"json":     true,
			"text":     true,
			"markdown": true,
		}
		if !validFormats[c.Report.Format] {
			return fmt.Errorf("invalid report format: %s (must be one of: csv, json, text, markdown)", c.Report.Format)
		}
	}
	if c.Report.Threshold < 0.0 || c.Report.Threshold > 1.0 {
		return fmt.Errorf("threshold must be between 0.0 and 1.0, got %v", c.Report.Threshold)
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// mergeConfigs merges src into dst, overriding only fields src sets.
// Threshold uses NaN as its unset marker because 0.0 is a legal value.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if src.Input.Directory != "" {
		dst.Input.Directory = src.Input.Directory
	}
	if len(src.Input.ExcludeDirs) > 0 {
		dst.Input.ExcludeDirs = src.Input.ExcludeDirs
	}
	if len(src.Tokenizer.ExtraStopWords) > 0 {
		dst.Tokenizer.ExtraStopWords = src.Tokenizer.ExtraStopWords
	}
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
	if src.Report.OutputFile != "" {
		dst.Report.OutputFile = src.Report.OutputFile
	}
	if !math.IsNaN(src.Report.Threshold) {
		dst.Report.Threshold = src.Report.Threshold
	}
	if src.Output.ColorMode != "" {
		dst.Output.ColorMode = src.Output.ColorMode
	}
	if src.Output.Verbose {
		dst.Output.Verbose = true
	}
}
