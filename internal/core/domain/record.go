package domain

import (
	"fmt"
	"math"
	"time"

	"go.trai.ch/zerr"
)

// ExecutionRecord is one entry of the structured execution log.
type ExecutionRecord struct {
	Timestamp            time.Time `json:"timestamp"`
	ExecutionTimeSeconds float64   `json:"execution_time_seconds"`
	CommitHash           string    `json:"commit_hash"`
	Command              string    `json:"command,omitempty"`
	ExitCode             *int      `json:"exit_code,omitempty"`
}

// NewExecutionRecord creates a record for a run that took seconds to complete.
// An empty commit is replaced by UnknownCommit.
func NewExecutionRecord(at time.Time, seconds float64, commit string) (ExecutionRecord, error) {
	if err := ValidateSeconds(seconds); err != nil {
		return ExecutionRecord{}, err
	}
	return ExecutionRecord{
		Timestamp:            at,
		ExecutionTimeSeconds: seconds,
		CommitHash:           NormalizeCommit(commit),
	}, nil
}

// WithWorkload returns a copy of the record annotated with the timed command and its exit code.
func (r ExecutionRecord) WithWorkload(command string, exitCode int) ExecutionRecord {
	r.Command = command
	code := exitCode
	r.ExitCode = &code
	return r
}

// ValidateSeconds rejects negative and NaN durations.
func ValidateSeconds(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return zerr.With(ErrInvalidDuration, "seconds", seconds)
	}
	return nil
}

// FormatTiming renders seconds the way the plain timing log stores them.
func FormatTiming(seconds float64) string {
	return fmt.Sprintf("%.6f\n", seconds)
}

// NormalizeCommit substitutes the sentinel for an empty revision.
func NormalizeCommit(commit string) string {
	if commit == "" {
		return UnknownCommit
	}
	return commit
}
