package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"utest/pkg/check"
)

// Config holds all configuration for the application. The engine only
// ever reads the flag set; it never validates or mutates it.
type Config struct {
	// Output settings
	ResultsDir  string
	ResultsFile string

	// Optional MySQL DSN for the run-history sink.
	HistoryDSN string

	// Internal tracing level (zerolog level string).
	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds validated command-line options.
type Flags struct {
	Quiet    bool
	Verbose  bool
	Explain  bool
	Progress bool
	Cases    bool
	Names    []string
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
		LogLevel:    DefaultLogLevel,
	}
}

// Load creates a config from defaults, an optional .env file, process
// environment and the given flags, in that precedence order.
func Load(flags Flags) *Config {
	cfg := New()
	// A missing .env is fine; only explicit settings override defaults.
	_ = godotenv.Load()
	if v := os.Getenv(EnvResultsDir); v != "" {
		cfg.ResultsDir = v
	}
	if v := os.Getenv(EnvResultsFile); v != "" {
		cfg.ResultsFile = v
	}
	if v := os.Getenv(EnvHistoryDSN); v != "" {
		cfg.HistoryDSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.Flags = flags
	return cfg
}

// Verbosity maps the quiet/verbose flags onto the collector's levels;
// verbose wins when both are set.
func (c *Config) Verbosity() int {
	switch {
	case c.Flags.Verbose:
		return check.Verbose
	case c.Flags.Quiet:
		return check.Quiet
	default:
		return check.Dots
	}
}

// ResultsPath returns the absolute path of the results JSON file, so
// run and failures always read the same file regardless of cwd.
func (c *Config) ResultsPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
