package domain

import (
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// PublishConfig controls committing the artifacts after a run.
type PublishConfig struct {
	Enabled bool
	Push    bool
	Author  string
	Email   string
}

// Config is the resolved configuration of a snap workspace.
type Config struct {
	Project    string
	Dir        string
	Sort       bool
	Hash       bool
	Hidden     bool
	Ignore     []string
	TimingLog  string
	RecordLog  string
	IndexPath  string
	Publish    PublishConfig
	SourcePath string
}

// DefaultConfig returns the configuration used when no snap.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Project:   DefaultProjectName,
		Dir:       ".",
		Sort:      true,
		Hash:      true,
		Hidden:    true,
		TimingLog: TimingLogFileName,
		RecordLog: RecordLogFileName,
		IndexPath: IndexFileName,
		Publish: PublishConfig{
			Author: "snap",
			Email:  "snap@localhost",
		},
	}
}

// ValidateProjectName checks that name is usable as a project identifier.
func ValidateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return zerr.With(ErrInvalidProjectName, "project", name)
	}
	return nil
}

// Resolve makes relative artifact paths relative to base.
func (c *Config) Resolve(base string) {
	c.Dir = join(base, c.Dir)
	c.TimingLog = join(base, c.TimingLog)
	c.RecordLog = join(base, c.RecordLog)
	c.IndexPath = join(base, c.IndexPath)
}

func join(base, p string) string {
	if p == "" || filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}

// ScanOptions returns the enumeration options described by the config.
func (c *Config) ScanOptions() ScanOptions {
	return ScanOptions{Hash: c.Hash, Hidden: c.Hidden, Ignore: c.Ignore}
}

// PublishRequest describes one publish operation.
type PublishRequest struct {
	Dir     string
	Message string
	Author  string
	Email   string
	Push    bool
}
