package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const appVersion = "1.0.0"

// errDifferencesFound makes --exit-code exit 1 without printing an error
var errDifferencesFound = errors.New("inputs differ")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errDifferencesFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "sidediff [ORIGINAL] [CHANGED]",
		Short: "Compare two texts side by side with word-level highlighting",
		Long: `sidediff shows ORIGINAL and CHANGED in two aligned columns. Modified
lines are paired and the words that changed are highlighted.

Either file may be "-" to read standard input. With no files the
interactive view opens with a built-in example.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(args); err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Print, "print", "p", false, "print the comparison and exit")
	flags.BoolVarP(&cfg.ExitCode, "exit-code", "e", false, "with --print, exit 1 when the inputs differ")
	flags.StringVar(&cfg.Provider, "provider", cfg.Provider, "diff provider: "+strings.Join(ProviderNames(), ", "))
	flags.StringVar(&cfg.Rev, "rev", "", "read ORIGINAL from this git revision of the single FILE argument")
	flags.StringVar(&cfg.Patch, "patch", "", "build CHANGED by applying this unified patch to ORIGINAL")
	flags.IntVarP(&cfg.Width, "width", "w", 0, "output width for --print (default: terminal width or 120)")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable colour in --print output")
	flags.StringVar(&cfg.Language, "lang", "", "syntax highlighting language (default: detect from file name)")
	flags.StringVar(&cfg.Style, "style", cfg.Style, "syntax highlighting style")
	flags.BoolVar(&cfg.Watch, "watch", false, "compare again when an input file changes")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, cfg Config, args []string) error {
	stderr := cmd.ErrOrStderr()

	level, _ := ParseLogLevel(cfg.LogLevel)
	logger, err := NewFileLogger(level)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	logger.Info("sidediff starting", map[string]any{
		"version":  appVersion,
		"provider": cfg.Provider,
		"print":    cfg.Print,
	})

	loader := NewInputLoader(cfg, cmd.InOrStdin())
	in, err := loader.Load(cmd.Context(), args)
	language := cfg.Language
	switch {
	case errors.Is(err, ErrNoInput) && !cfg.Print:
		in = SampleInputs()
		if language == "" {
			language = sampleLanguage
		}
	case errors.Is(err, ErrNoInput):
		return fmt.Errorf("%w: --print needs ORIGINAL and CHANGED", err)
	case err != nil:
		logger.Error("failed to load inputs", err, nil)
		return err
	}

	provider := LookupProvider(cfg.Provider)
	lexer := DetectLexer(language, in.Original.Path, in.Changed.Path)

	if cfg.Print {
		return printComparison(cmd.OutOrStdout(), cfg, in, provider, NewSyntaxHighlighter(cfg.Style, lexer))
	}

	opts := []Option{
		WithProvider(provider, cfg.Provider),
		WithLogger(logger),
		WithHighlighter(NewSyntaxHighlighter(cfg.Style, lexer)),
	}
	if cfg.Watch {
		watcher, err := NewWatcher(in.WatchPaths())
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer watcher.Close()
		opts = append(opts, WithWatcher(watcher, func(ctx context.Context) (Inputs, error) {
			return loader.Load(ctx, args)
		}))
	}

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	}
	if readsStdin(args) {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	program := tea.NewProgram(NewModel(in, opts...), programOpts...)
	if _, err := program.Run(); err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run program: %w", err)
	}

	reportLoggerStats(stderr, logger)
	return nil
}

// printComparison writes the comparison to w. With --exit-code it returns
// errDifferencesFound when the inputs differ.
func printComparison(w io.Writer, cfg Config, in Inputs, provider Provider, highlighter *SyntaxHighlighter) error {
	renderer := lipgloss.NewRenderer(w)
	if cfg.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
		highlighter = nil
	}

	width := cfg.Width
	if width == 0 {
		width = terminalWidth(w)
	}

	cmp := Compare(provider, in.Original.Text, in.Changed.Text)
	p := &Printer{
		Out:         w,
		Width:       width,
		Styles:      NewStyles(renderer),
		Highlighter: highlighter,
	}
	if err := p.Print(in, cmp); err != nil {
		return fmt.Errorf("write comparison: %w", err)
	}

	if cfg.ExitCode && cmp.HasChanges() {
		return errDifferencesFound
	}
	return nil
}

// terminalWidth returns the width of w if it is a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultPrintWide
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultPrintWide
	}
	return width
}

func readsStdin(args []string) bool {
	for _, arg := range args {
		if arg == stdinArg {
			return true
		}
	}
	return false
}

func reportLoggerStats(w io.Writer, logger *Logger) {
	errs, warnings := logger.Counts()
	if errs == 0 {
		return
	}

	fmt.Fprintf(w, "\ncompleted with %d error(s)\n", errs)
	if warnings > 0 {
		fmt.Fprintf(w, "warnings: %d\n", warnings)
	}
	if path := logger.Path(); path != "" {
		fmt.Fprintf(w, "see %s\n", path)
	}
}
