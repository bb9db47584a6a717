package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

var ErrNoInput = errors.New("no input to compare")

// stdinArg selects standard input as a source
const stdinArg = "-"

// Source is one side of a comparison
type Source struct {
	Label string // shown in panel headers
	Path  string // file backing the source, empty for stdin and samples
	Text  string
}

// Inputs holds both sides of a comparison
type Inputs struct {
	Original Source
	Changed  Source
}

// WatchPaths returns the files backing the inputs
func (in Inputs) WatchPaths() []string {
	var paths []string
	for _, p := range []string{in.Original.Path, in.Changed.Path} {
		if p != "" && (len(paths) == 0 || paths[0] != p) {
			paths = append(paths, p)
		}
	}
	return paths
}

// SampleInputs returns the built-in example shown when no files are given
func SampleInputs() Inputs {
	return Inputs{
		Original: Source{Label: "Original Code", Text: sampleOriginal},
		Changed:  Source{Label: "Changed Code", Text: sampleChanged},
	}
}

// InputLoader resolves command-line arguments into comparison inputs
type InputLoader struct {
	Rev   string
	Patch string
	Stdin io.Reader
	Git   func(dir string) (*GitService, error)
}

// NewInputLoader creates a loader for the given configuration
func NewInputLoader(cfg Config, stdin io.Reader) *InputLoader {
	return &InputLoader{
		Rev:   cfg.Rev,
		Patch: cfg.Patch,
		Stdin: stdin,
		Git:   NewGitService,
	}
}

// Load reads the inputs named by args.
//
//	ORIGINAL CHANGED        two files (either may be "-")
//	--rev REV FILE          FILE at REV against FILE in the worktree
//	--patch PATCH ORIGINAL  ORIGINAL against ORIGINAL with PATCH applied
func (l *InputLoader) Load(ctx context.Context, args []string) (Inputs, error) {
	switch {
	case l.Rev != "":
		if len(args) != 1 {
			return Inputs{}, fmt.Errorf("--rev takes exactly one file, got %d", len(args))
		}
		return l.loadRevision(ctx, args[0])
	case l.Patch != "":
		if len(args) != 1 {
			return Inputs{}, fmt.Errorf("--patch takes exactly one original file, got %d", len(args))
		}
		return l.loadPatched(args[0])
	case len(args) == 0:
		return Inputs{}, ErrNoInput
	case len(args) != 2:
		return Inputs{}, fmt.Errorf("expected ORIGINAL and CHANGED, got %d argument(s)", len(args))
	case args[0] == stdinArg && args[1] == stdinArg:
		return Inputs{}, errors.New("only one input can be read from stdin")
	}

	var in Inputs
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		src, err := l.readSource(args[0])
		in.Original = src
		return err
	})
	g.Go(func() error {
		src, err := l.readSource(args[1])
		in.Changed = src
		return err
	})
	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

func (l *InputLoader) loadRevision(ctx context.Context, path string) (Inputs, error) {
	gs, err := l.Git(filepath.Dir(path))
	if err != nil {
		return Inputs{}, err
	}

	var in Inputs
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := gs.ReadAtRevision(l.Rev, path)
		in.Original = Source{Label: l.Rev + ":" + filepath.Base(path), Text: text}
		return err
	})
	g.Go(func() error {
		src, err := l.readSource(path)
		in.Changed = src
		return err
	})
	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

func (l *InputLoader) loadPatched(path string) (Inputs, error) {
	original, err := l.readSource(path)
	if err != nil {
		return Inputs{}, err
	}

	patch, err := os.Open(l.Patch)
	if err != nil {
		return Inputs{}, fmt.Errorf("failed to open patch: %w", err)
	}
	defer patch.Close()

	changed, err := ApplyPatch(original.Text, patch)
	if err != nil {
		return Inputs{}, err
	}

	// Only the original file is watched; the patch is read once per load.
	return Inputs{
		Original: original,
		Changed:  Source{Label: original.Label + " + " + filepath.Base(l.Patch), Text: normalizeNewlines(changed)},
	}, nil
}

func (l *InputLoader) readSource(arg string) (Source, error) {
	if arg == stdinArg {
		if l.Stdin == nil {
			return Source{}, errors.New("stdin is not available")
		}
		content, err := io.ReadAll(io.LimitReader(l.Stdin, MaxFileSize+1))
		if err != nil {
			return Source{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		if err := enforceSizeLimit("stdin", len(content)); err != nil {
			return Source{}, err
		}
		return Source{Label: "stdin", Text: normalizeNewlines(string(content))}, nil
	}

	content, err := os.ReadFile(arg)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read %s: %w", arg, err)
	}
	if err := enforceSizeLimit(arg, len(content)); err != nil {
		return Source{}, err
	}
	return Source{Label: filepath.Base(arg), Path: arg, Text: normalizeNewlines(string(content))}, nil
}

// normalizeNewlines converts CRLF line endings to LF
func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// enforceSizeLimit checks if content exceeds the size limit
func enforceSizeLimit(name string, size int) error {
	if size <= MaxFileSize {
		return nil
	}
	return fmt.Errorf("%s too large to diff (%d > %d)", name, size, MaxFileSize)
}
