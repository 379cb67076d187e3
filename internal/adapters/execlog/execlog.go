// Package execlog appends per-run timing data to the plain and structured execution logs.
package execlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/snap/internal/adapters/fslock"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExecutionLogger = (*Log)(nil)

// maxRecordSize bounds a single JSON line when reading the record log.
// Longer lines are counted as malformed.
const maxRecordSize = 1024 * 1024

// Log implements ports.ExecutionLogger on append-only files.
type Log struct {
	logger ports.Logger
}

// New creates a new Log.
func New(logger ports.Logger) *Log {
	return &Log{logger: logger}
}

// AppendPlainTiming appends seconds as one fixed-precision line.
func (l *Log) AppendPlainTiming(path string, seconds float64) error {
	if err := domain.ValidateSeconds(seconds); err != nil {
		return err
	}

	if err := appendLine(path, []byte(domain.FormatTiming(seconds))); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTimingLogWriteFailed.Error()), "path", path)
	}
	return nil
}

// AppendExecutionRecord appends rec as a single JSON line.
func (l *Log) AppendExecutionRecord(path string, rec domain.ExecutionRecord) error {
	if err := domain.ValidateSeconds(rec.ExecutionTimeSeconds); err != nil {
		return err
	}
	rec.CommitHash = domain.NormalizeCommit(rec.CommitHash)

	data, err := json.Marshal(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}

	if err := appendLine(path, append(data, '\n')); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRecordLogWriteFailed.Error()), "path", path)
	}
	return nil
}

// ReadRecords returns the last limit records in file order. Lines that are
// not valid records, or longer than maxRecordSize, are skipped and counted in
// a warning.
func (l *Log) ReadRecords(path string, limit int) ([]domain.ExecutionRecord, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.ExecutionRecord{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordLogReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	records := make([]domain.ExecutionRecord, 0)
	skipped := 0

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordLogReadFailed.Error()), "path", path)
		}

		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
		case len(line) > maxRecordSize:
			skipped++
		default:
			var rec domain.ExecutionRecord
			if jsonErr := json.Unmarshal(line, &rec); jsonErr != nil {
				skipped++
			} else {
				records = append(records, rec)
			}
		}

		if err != nil {
			break
		}
	}

	if skipped > 0 {
		l.logger.Warn(fmt.Sprintf("skipped %d malformed records in %s", skipped, path))
	}

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

// appendLine writes data at the end of path under the artifact lock and
// flushes it to stable storage. The file is never truncated.
func appendLine(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}

	return fslock.WithLock(path, func() error {
		//nolint:gosec // Path comes from configuration
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
		if err != nil {
			return err
		}

		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}
