// Package toolchain locates the optional external tools kiln drives.
package toolchain

import "os/exec"

// Resolver implements ports.ToolResolver on the process search path.
type Resolver struct {
	lookPath func(string) (string, error)
}

// NewResolver creates a Resolver backed by exec.LookPath.
func NewResolver() *Resolver {
	return &Resolver{lookPath: exec.LookPath}
}

// Find returns the first candidate present on the search path.
func (r *Resolver) Find(candidates []string) (string, bool) {
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if path, err := r.lookPath(name); err == nil {
			return path, true
		}
	}
	return "", false
}
