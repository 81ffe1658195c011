package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeKilnfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(content), 0o600))
	return dir
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoad_MissingFile(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	project, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProject(dir), project)
}

func TestLoad_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t)
	dir := writeKilnfile(t, "")

	project, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProject(dir), project)
}

func TestLoad_Full(t *testing.T) {
	loader, _ := newLoader(t)
	dir := writeKilnfile(t, `
project: RealmEngine
source_dir: engine/src
extensions: [cpp, .hpp, ""]
ignore: [third_party]
executable: out/bin/RealmEngine
defines:
  ENABLE_TESTS: "OFF"
tools:
  formatter: [clang-format-18]
  linter: [clang-tidy-18]
`)

	project, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.Equal(t, "RealmEngine", project.Name)
	assert.Equal(t, filepath.Join("engine", "src"), project.SourceDir)
	assert.Equal(t, []string{".cpp", ".hpp"}, project.Extensions)
	assert.Equal(t, []string{"third_party"}, project.Ignore)
	assert.Equal(t, filepath.Join("out", "bin", "RealmEngine"), project.Executable)
	assert.Equal(t, map[string]string{"ENABLE_TESTS": "OFF"}, project.Defines)
	assert.Equal(t, []string{"clang-format-18"}, project.Formatters)
	assert.Equal(t, []string{"clang-tidy-18"}, project.Linters)
}

func TestLoad_ProjectNameSetsExecutable(t *testing.T) {
	loader, _ := newLoader(t)
	dir := writeKilnfile(t, "project: Forge\n")

	project, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("bin", "Forge"), project.Executable)
	assert.Equal(t, domain.DefaultLinterCandidates(), project.Linters)
}

func TestLoad_InvalidIgnorePattern(t *testing.T) {
	loader, log := newLoader(t)
	log.EXPECT().Warn("Ignoring invalid ignore pattern: [").Times(1)
	dir := writeKilnfile(t, "ignore: ['[', build]\n")

	project, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, project.Ignore)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
		metaKey  string
	}{
		{name: "malformed yaml", content: "project: [", contains: "failed to parse project file"},
		{name: "unknown field", content: "generator: Ninja\n", contains: "failed to parse project file"},
		{name: "invalid project name", content: "project: \"my app\"\n", contains: "invalid project name", metaKey: "project_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			_, err := loader.Load(writeKilnfile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)

			if tt.metaKey != "" {
				var zErr *zerr.Error
				require.ErrorAs(t, err, &zErr)
				assert.Contains(t, zErr.Metadata(), tt.metaKey)
			}
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.ProjectFileName), domain.DirPerm))

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project file")
}
