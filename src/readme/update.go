// Package readme splices externally sourced fragments into text documents
// at marker lines.
//
// Two strategies are supported. Single-marker mode inserts the fragment
// after an anchor line such as "## Sponsors". Dual-marker mode replaces the
// region between a start and an end line such as
//
//	<!-- start-insert -->
//	...managed content...
//	<!-- end-insert -->
//
// Content outside the spliced region is never touched, down to its line
// terminators.
package readme

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Fetcher produces the fragment to splice.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
	// String describes the source for error messages.
	String() string
}

// Result describes the outcome of an update.
type Result struct {
	Path    string
	Mode    Mode
	Changed bool   // content differs from what was on disk
	Written bool   // file was rewritten
	Content string // reconstructed document
}

// Updater rewrites a document around its markers.
type Updater struct {
	Markers Markers

	// DryRun computes the result without writing the file.
	DryRun bool

	// Check, if set, inspects the fetched fragment before anything is
	// written. A non-nil error aborts the update with ErrFragmentRejected.
	Check func(fragment string) error
}

// Update reads path, fetches the fragment from src, splices it in, and
// overwrites path when the content changed.
//
// The file is read before the fetch so a missing file never costs a remote
// request. On any error the file is left untouched. The rewrite is a plain
// overwrite; a crash mid-write can truncate the file.
func (u *Updater) Update(ctx context.Context, path string, src Fetcher) (*Result, error) {
	if err := u.Markers.Validate(); err != nil {
		return nil, fmt.Errorf("readme: invalid markers: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("readme: %s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("readme: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("readme: %s is a directory", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("readme: reading %s: %w", path, err)
	}
	original := string(raw)

	fragment, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("readme: %w", &FetchError{Source: src.String(), Err: err})
	}

	if u.Check != nil {
		if err := u.Check(fragment); err != nil {
			return nil, fmt.Errorf("readme: %s: %w: %w", src, ErrFragmentRejected, err)
		}
	}

	updated, err := Splice(original, u.Markers, fragment)
	if err != nil {
		return nil, fmt.Errorf("readme: %s: %w", path, err)
	}

	res := &Result{
		Path:    path,
		Mode:    u.Markers.Mode,
		Changed: updated != original,
		Content: updated,
	}
	if u.DryRun || !res.Changed {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("readme: writing %s: %w", path, err)
	}
	res.Written = true
	return res, nil
}
