// Package config loads and validates the YAML configuration of the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-html2md/internal/fileutil"
	"github.com/alnah/go-html2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-html2md"

// Field limits.
const (
	MaxSelectorLength  = 500
	MaxUserAgentLength = 300
	MaxStyleLength     = 50
	MaxTimeout         = 10 * time.Minute
	MaxWorkers         = 32
)

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// Config holds all configuration for batch conversion.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Markdown    MarkdownConfig    `yaml:"markdown"`
	Extract     ExtractConfig     `yaml:"extract"`
	Fetch       FetchConfig       `yaml:"fetch"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
	Preview     PreviewConfig     `yaml:"preview"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Extension  string `yaml:"extension"`  // default ".md"
	Workers    int    `yaml:"workers"`    // 0 = automatic
}

// MarkdownConfig selects the Markdown flavour.
type MarkdownConfig struct {
	Bullet    string `yaml:"bullet"`    // "*", "-", "+"
	Strong    string `yaml:"strong"`    // "**", "__"
	Em        string `yaml:"em"`        // "*", "_"
	LinkStyle string `yaml:"linkStyle"` // "inline"
}

// ExtractConfig narrows pages before conversion.
type ExtractConfig struct {
	Selector    string `yaml:"selector"`
	StripNoise  bool   `yaml:"stripNoise"`
	MainContent bool   `yaml:"mainContent"`
}

// FetchConfig controls how URLs are retrieved.
type FetchConfig struct {
	Render    bool          `yaml:"render"`    // load pages in headless Chrome
	Timeout   time.Duration `yaml:"timeout"`   // per page, e.g. "30s"
	UserAgent string        `yaml:"userAgent"` // empty = built-in
}

// FrontMatterConfig controls the YAML block written before the Markdown.
type FrontMatterConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PreviewConfig controls the HTML preview written next to each output.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name
}

// Validate implements validation.Validatable.
func (c OutputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Extension, validation.Match(extensionPattern).Error("must look like .md")),
		validation.Field(&c.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	)
}

// Validate implements validation.Validatable.
func (c MarkdownConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Bullet, validation.In("*", "-", "+")),
		validation.Field(&c.Strong, validation.In("**", "__")),
		validation.Field(&c.Em, validation.In("*", "_")),
		validation.Field(&c.LinkStyle, validation.In("inline")),
	)
}

// Validate implements validation.Validatable.
func (c ExtractConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Selector, validation.Length(0, MaxSelectorLength)),
	)
}

// Validate implements validation.Validatable.
func (c FetchConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timeout, validation.By(func(value any) error {
			d, _ := value.(time.Duration)
			if d < 0 || d > MaxTimeout {
				return validation.NewError("config.fetch.timeout.range",
					fmt.Sprintf("must be between 0 and %s", MaxTimeout))
			}
			return nil
		})),
		validation.Field(&c.UserAgent, validation.Length(0, MaxUserAgentLength)),
	)
}

// Validate implements validation.Validatable.
func (c PreviewConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Style, validation.Length(0, MaxStyleLength)),
	)
}

// Validate checks every section. Called by LoadConfig, and available to
// callers that build a Config in code.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Output),
		validation.Field(&c.Markdown),
		validation.Field(&c.Extract),
		validation.Field(&c.Fetch),
		validation.Field(&c.Preview),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// DefaultConfig returns a configuration with every optional feature off.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{Extension: ".md"},
		Markdown: MarkdownConfig{Bullet: "*", Strong: "**", Em: "*", LinkStyle: "inline"},
		Fetch:    FetchConfig{Timeout: 30 * time.Second},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a path; anything else is
// a name searched as <name>.yaml and <name>.yml in the current directory,
// then in the user config directory. Missing files are an error.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
