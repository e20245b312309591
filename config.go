package minilang

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/minilang/internal/semantic"
)

// DefaultConfigFile is the configuration file looked up by the CLI when
// no --config flag is given.
const DefaultConfigFile = "minilang.yaml"

// Config holds configuration options for an analysis run.
type Config struct {
	// Input is the path of the MiniLang source file (default: "program.mini").
	// Only used by Run and AnalyzeFile callers that pass an empty path.
	Input string `yaml:"input"`

	// OutputDir is the directory the report files are written to (default: ".").
	OutputDir string `yaml:"output_dir"`

	// EntryPoint is the function classified as the program entry
	// (default: "main").
	EntryPoint string `yaml:"entry_point"`

	// Scoping selects local variable scoping: "flat" (default) clears the
	// set of known locals on every block entry, "nested" keeps a stack of
	// block scopes and allows shadowing.
	Scoping string `yaml:"scoping"`

	// Detailed renders front-end errors with their offending symbol.
	Detailed bool `yaml:"detailed"`

	// Verbose reports each written file on Stderr.
	Verbose bool `yaml:"verbose"`

	// Stdout receives the console diagnostics listing.
	// If nil, it is discarded.
	Stdout io.Writer `yaml:"-"`

	// Stderr receives progress notices.
	// If nil, they are discarded.
	Stderr io.Writer `yaml:"-"`
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = "program.mini"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.EntryPoint == "" {
		c.EntryPoint = semantic.DefaultEntryPoint
	}
	if c.Scoping == "" {
		c.Scoping = semantic.ScopeFlat.String()
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}
}

// semanticConfig validates the analyzer settings and converts them.
func (c *Config) semanticConfig() (semantic.Config, error) {
	scoping, err := semantic.ParseScoping(c.Scoping)
	if err != nil {
		return semantic.Config{}, &ConfigError{Field: "scoping", Err: err}
	}
	return semantic.Config{EntryPoint: c.EntryPoint, Scoping: scoping}, nil
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected.
// An empty file yields a zero Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return ParseConfig(path, data)
}

// ParseConfig decodes YAML configuration data. path is only used in
// error messages.
func ParseConfig(path string, data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if _, err := cfg.semanticConfig(); err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return cfg, nil
}
