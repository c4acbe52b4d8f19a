package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-html2md/internal/config"
)

// envPrefix marks variables read by html2md.
const envPrefix = "HTML2MD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // HTML2MD_CONFIG: config file name or path
	Bullet     string        // HTML2MD_BULLET: list marker
	Selector   string        // HTML2MD_SELECTOR: content selector
	OutputDir  string        // HTML2MD_OUTPUT_DIR: default output directory
	Workers    int           // HTML2MD_WORKERS: parallel workers
	Timeout    time.Duration // HTML2MD_TIMEOUT: per-page fetch timeout
}

// knownEnvVars lists valid HTML2MD_* environment variables.
var knownEnvVars = map[string]bool{
	"HTML2MD_CONFIG":     true,
	"HTML2MD_BULLET":     true,
	"HTML2MD_SELECTOR":   true,
	"HTML2MD_OUTPUT_DIR": true,
	"HTML2MD_WORKERS":    true,
	"HTML2MD_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numeric values are reported as warnings and ignored.
func loadEnvConfig(lookup func(string) (string, bool)) (*envConfig, []string) {
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}

	cfg := &envConfig{
		ConfigPath: get("HTML2MD_CONFIG"),
		Bullet:     get("HTML2MD_BULLET"),
		Selector:   get("HTML2MD_SELECTOR"),
		OutputDir:  get("HTML2MD_OUTPUT_DIR"),
	}

	var warnings []string
	if v := get("HTML2MD_WORKERS"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			cfg.Workers = w
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring HTML2MD_WORKERS=%q: want a positive integer", v))
		}
	}
	if v := get("HTML2MD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring HTML2MD_TIMEOUT=%q: want a duration like 30s", v))
		}
	}
	return cfg, warnings
}

// warnUnknownEnvVars reports unrecognized HTML2MD_* variables.
// Helps catch typos like HTML2MD_BULLETS.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values on the loaded config.
// Flags are merged afterwards, giving flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Bullet != "" {
		cfg.Markdown.Bullet = env.Bullet
	}
	if env.Selector != "" {
		cfg.Extract.Selector = env.Selector
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Output.Workers = env.Workers
	}
	if env.Timeout > 0 {
		cfg.Fetch.Timeout = env.Timeout
	}
}
