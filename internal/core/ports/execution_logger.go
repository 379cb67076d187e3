package ports

import "go.trai.ch/snap/internal/core/domain"

// ExecutionLogger appends per-run timing data to durable logs.
//
//go:generate mockgen -source=execution_logger.go -destination=mocks/mock_execution_logger.go -package=mocks
type ExecutionLogger interface {
	// AppendPlainTiming appends one line holding seconds to the plain log at path.
	AppendPlainTiming(path string, seconds float64) error

	// AppendExecutionRecord appends rec as one JSON line to the record log at path.
	AppendExecutionRecord(path string, rec domain.ExecutionRecord) error

	// ReadRecords returns the last limit records of the log at path, oldest first.
	// A non-positive limit returns every record.
	ReadRecords(path string, limit int) ([]domain.ExecutionRecord, error)
}
