package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
)

// Config holds the command-line options
type Config struct {
	Print    bool   // print the comparison instead of opening the UI
	ExitCode bool   // with Print, exit 1 when the inputs differ
	Provider string // diff provider name
	Rev      string // git revision for the original side
	Patch    string // patch file producing the changed side
	Width    int    // output width for Print, 0 means detect
	NoColor  bool
	Language string // chroma lexer name, empty means detect from file name
	Style    string // chroma style name
	Watch    bool
	LogLevel string
}

const (
	defaultStyle     = "monokai"
	defaultLogLevel  = "info"
	envProvider      = "SIDEDIFF_PROVIDER"
	envStyle         = "SIDEDIFF_STYLE"
	defaultPrintWide = 120
)

// DefaultConfig returns the configuration used when no flags are given.
// SIDEDIFF_PROVIDER and SIDEDIFF_STYLE override the built-in defaults.
func DefaultConfig() Config {
	cfg := Config{
		Provider: defaultProviderName,
		Style:    defaultStyle,
		LogLevel: defaultLogLevel,
	}
	if v := os.Getenv(envProvider); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv(envStyle); v != "" {
		cfg.Style = v
	}
	return cfg
}

// Validate checks option combinations that cannot work together
func (c Config) Validate(args []string) error {
	if c.Rev != "" && c.Patch != "" {
		return fmt.Errorf("--rev and --patch cannot be combined")
	}
	if c.ExitCode && !c.Print {
		return fmt.Errorf("--exit-code requires --print")
	}
	if c.Width < 0 {
		return fmt.Errorf("--width must not be negative")
	}
	if c.Watch {
		if c.Print {
			return fmt.Errorf("--watch cannot be combined with --print")
		}
		if readsStdin(args) {
			return fmt.Errorf("--watch cannot read from stdin")
		}
	}
	if LookupProvider(c.Provider) == nil {
		return fmt.Errorf("unknown provider %q (available: %s)", c.Provider, strings.Join(ProviderNames(), ", "))
	}
	if c.Style != "" && styles.Get(c.Style) == styles.Fallback && !strings.EqualFold(c.Style, styles.Fallback.Name) {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
