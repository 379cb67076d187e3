package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snap/internal/adapters/config"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := newLoader(t).Load(filepath.Join(dir, domain.ConfigFileName))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultProjectName, cfg.Project)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, domain.TimingLogFileName), cfg.TimingLog)
	assert.Equal(t, filepath.Join(dir, domain.RecordLogFileName), cfg.RecordLog)
	assert.Equal(t, filepath.Join(dir, domain.IndexFileName), cfg.IndexPath)
	assert.True(t, cfg.Sort)
	assert.True(t, cfg.Hash)
	assert.Empty(t, cfg.SourcePath)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
project: my-project
dir: data
sort: false
hash: false
hidden: false
ignore: ["*.tmp", "scratch*"]
logs:
  timing: logs/times.log
  records: logs/records.jsonl
index: out/index.json
publish:
  enabled: true
  push: true
  author: bot
  email: bot@example.com
`)
	base := filepath.Dir(path)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.Project)
	assert.Equal(t, filepath.Join(base, "data"), cfg.Dir)
	assert.False(t, cfg.Sort)
	assert.False(t, cfg.Hash)
	assert.False(t, cfg.Hidden)
	assert.Equal(t, []string{"*.tmp", "scratch*"}, cfg.Ignore)
	assert.Equal(t, filepath.Join(base, "logs", "times.log"), cfg.TimingLog)
	assert.Equal(t, filepath.Join(base, "logs", "records.jsonl"), cfg.RecordLog)
	assert.Equal(t, filepath.Join(base, "out", "index.json"), cfg.IndexPath)
	assert.Equal(t, domain.PublishConfig{Enabled: true, Push: true, Author: "bot", Email: "bot@example.com"}, cfg.Publish)
	assert.Equal(t, path, cfg.SourcePath)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := newLoader(t).Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProjectName, cfg.Project)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid yaml", "project: [unclosed", domain.ErrConfigParseFailed.Error()},
		{"unknown key", "projekt: typo", domain.ErrConfigParseFailed.Error()},
		{"invalid project name", "project: has space", domain.ErrInvalidProjectName.Error()},
		{"bad ignore pattern", `ignore: ["[unclosed"]`, domain.ErrConfigParseFailed.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	// A directory at the config path cannot be read as a file.
	dir := t.TempDir()
	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
