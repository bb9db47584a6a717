package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

var (
	ErrBinaryPatch    = errors.New("binary patches are not supported")
	ErrPatchFileCount = errors.New("patch must change exactly one file")
)

// ApplyPatch applies a single-file unified (or git) patch read from patch to
// original and returns the patched text.
func ApplyPatch(original string, patch io.Reader) (string, error) {
	files, _, err := gitdiff.Parse(patch)
	if err != nil {
		return "", fmt.Errorf("failed to parse patch: %w", err)
	}
	if len(files) != 1 {
		return "", fmt.Errorf("%w (found %d)", ErrPatchFileCount, len(files))
	}

	file := files[0]
	if file.IsBinary {
		return "", ErrBinaryPatch
	}

	var out bytes.Buffer
	if err := gitdiff.Apply(&out, strings.NewReader(original), file); err != nil {
		return "", fmt.Errorf("failed to apply patch to %s: %w", patchTarget(file), err)
	}
	return out.String(), nil
}

func patchTarget(file *gitdiff.File) string {
	if file.NewName != "" {
		return file.NewName
	}
	return file.OldName
}
