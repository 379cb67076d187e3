// Package config provides the configuration loader for snap.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the snap.yaml at path and merges it over the defaults.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.SourcePath = path

	// #nosec G304 -- path comes from the --config flag
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Logger.Debug("no config file at " + path + ", using defaults")
		cfg.SourcePath = ""
		cfg.Resolve(filepath.Dir(path))
		return cfg, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Snapfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg.Resolve(filepath.Dir(path))
	return cfg, nil
}

func apply(cfg *domain.Config, file *Snapfile) error {
	if file.Project != "" {
		if err := domain.ValidateProjectName(file.Project); err != nil {
			return err
		}
		cfg.Project = file.Project
	}

	setString(&cfg.Dir, file.Dir)
	setString(&cfg.TimingLog, file.Logs.Timing)
	setString(&cfg.RecordLog, file.Logs.Records)
	setString(&cfg.IndexPath, file.Index)
	setBool(&cfg.Sort, file.Sort)
	setBool(&cfg.Hash, file.Hash)
	setBool(&cfg.Hidden, file.Hidden)

	for _, pattern := range file.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "ignore", pattern)
		}
	}
	cfg.Ignore = file.Ignore

	if p := file.Publish; p != nil {
		cfg.Publish.Enabled = p.Enabled
		cfg.Publish.Push = p.Push
		setString(&cfg.Publish.Author, p.Author)
		setString(&cfg.Publish.Email, p.Email)
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
