package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDuration is returned when an execution time is negative or not a number.
	ErrInvalidDuration = zerr.New("execution time must be a non-negative number")

	// ErrDuplicateEntry is returned when a manifest would list the same file name twice.
	ErrDuplicateEntry = zerr.New("duplicate file entry")

	// ErrTimingLogWriteFailed is returned when the plain timing log cannot be opened or written.
	ErrTimingLogWriteFailed = zerr.New("failed to write timing log")

	// ErrRecordLogWriteFailed is returned when the execution record log cannot be opened or written.
	ErrRecordLogWriteFailed = zerr.New("failed to write execution record log")

	// ErrRecordMarshalFailed is returned when an execution record cannot be marshaled.
	ErrRecordMarshalFailed = zerr.New("failed to marshal execution record")

	// ErrRecordLogReadFailed is returned when the execution record log cannot be read.
	ErrRecordLogReadFailed = zerr.New("failed to read execution record log")

	// ErrEnumerationFailed is returned when the target directory cannot be listed.
	ErrEnumerationFailed = zerr.New("failed to enumerate directory")

	// ErrIndexMarshalFailed is returned when the workspace index cannot be marshaled.
	ErrIndexMarshalFailed = zerr.New("failed to marshal workspace index")

	// ErrIndexWriteFailed is returned when the workspace index cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write workspace index")

	// ErrIndexReadFailed is returned when the workspace index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read workspace index")

	// ErrIndexNotFound is returned when no workspace index has been written yet.
	ErrIndexNotFound = zerr.New("workspace index not found")

	// ErrProvenanceUnavailable is returned when the current revision cannot be resolved.
	ErrProvenanceUnavailable = zerr.New("commit hash unavailable")

	// ErrLockFailed is returned when an artifact lock cannot be acquired.
	ErrLockFailed = zerr.New("failed to lock artifact")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrWorkloadFailed is returned when the timed workload command fails.
	ErrWorkloadFailed = zerr.New("workload command failed")

	// ErrPublishFailed is returned when staging, committing or pushing the artifacts fails.
	ErrPublishFailed = zerr.New("failed to publish artifacts")

	// ErrInvalidOutputMode is returned when the output mode flag is not auto, pretty or plain.
	ErrInvalidOutputMode = zerr.New("output mode must be auto, pretty or plain")

	// ErrPipelineFailed is returned when at least one pipeline step failed.
	ErrPipelineFailed = zerr.New("pipeline finished with errors")
)
