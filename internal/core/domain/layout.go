package domain

import "path/filepath"

const (
	// SnapDirName is the name of the internal workspace directory.
	SnapDirName = ".snap"

	// LockDirName is the name of the directory holding artifact locks.
	LockDirName = "locks"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "snap.yaml"

	// TimingLogFileName is the name of the plain-text timing log.
	TimingLogFileName = "exec_times.log"

	// RecordLogFileName is the name of the JSON-lines execution record log.
	RecordLogFileName = "exec_log.jsonl"

	// IndexFileName is the name of the workspace manifest.
	IndexFileName = "workspace_index.json"

	// DefaultProjectName is used when no project name is configured.
	DefaultProjectName = "workspace"

	// UnknownCommit is the sentinel recorded when the revision cannot be resolved.
	UnknownCommit = "unknown"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLockPath returns the default directory for artifact locks.
// It joins .snap and locks.
func DefaultLockPath() string {
	return filepath.Join(SnapDirName, LockDirName)
}

// LockPathFor returns the lock file guarding the artifact at path.
// Locks live under the internal directory next to the artifact so that
// they never show up as regular files in a manifest.
func LockPathFor(path string) string {
	dir := filepath.Dir(path)
	return filepath.Join(dir, DefaultLockPath(), filepath.Base(path)+".lock")
}
