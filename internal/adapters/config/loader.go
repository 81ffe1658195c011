// Package config provides the project file loader for kiln.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validProjectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Loader implements ports.ProjectLoader using an optional kiln.yaml file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads kiln.yaml from root. A missing file yields the default project.
func (l *Loader) Load(root string) (domain.Project, error) {
	project := domain.DefaultProject(root)
	path := filepath.Join(root, domain.ProjectFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is the fixed project file name
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project, nil
		}
		return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Kilnfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return project, nil
		}
		return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.apply(project, &file)
}

func (l *Loader) apply(project domain.Project, file *Kilnfile) (domain.Project, error) {
	if file.Project != "" {
		if !validProjectNameRegex.MatchString(file.Project) {
			return domain.Project{}, zerr.With(domain.ErrInvalidProjectName, "project_name", file.Project)
		}
		project.Name = file.Project
		project.Executable = filepath.Join(domain.DefaultExecutableDir, file.Project)
	}

	if file.SourceDir != "" {
		project.SourceDir = filepath.FromSlash(file.SourceDir)
	}

	if len(file.Extensions) > 0 {
		project.Extensions = normalizeExtensions(file.Extensions)
	}

	for _, pattern := range file.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			l.Logger.Warn("Ignoring invalid ignore pattern: " + pattern)
			continue
		}
		project.Ignore = append(project.Ignore, pattern)
	}

	if file.Executable != "" {
		project.Executable = filepath.FromSlash(file.Executable)
	}

	if len(file.Defines) > 0 {
		project.Defines = make(map[string]string, len(file.Defines))
		for k, v := range file.Defines {
			if strings.TrimSpace(k) == "" {
				return domain.Project{}, zerr.With(domain.ErrInvalidDefine, "define", k+"="+v)
			}
			project.Defines[k] = v
		}
	}

	if file.Tools != nil {
		if len(file.Tools.Formatter) > 0 {
			project.Formatters = file.Tools.Formatter
		}
		if len(file.Tools.Linter) > 0 {
			project.Linters = file.Tools.Linter
		}
	}

	return project, nil
}

// normalizeExtensions accepts "cpp" and ".cpp" alike.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
