// Package fs provides file system adapters for walking and hashing source files.
package fs

import (
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker implements ports.SourceWalker.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// FindSources returns the files below dir with one of the given extensions, in lexical order.
func (w *Walker) FindSources(dir string, extensions, ignores []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir {
			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(extensions, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPreconditionMissing.Error()), "dir", dir)
	}

	slices.Sort(files)
	return files, nil
}

// shouldSkip reports whether an entry is excluded and what WalkDir should do about it.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
