package execlog_test

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snap/internal/adapters/execlog"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLog(t *testing.T) (*execlog.Log, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return execlog.New(log), log
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestAppendPlainTiming_AppendsInOrder(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.TimingLogFileName)

	for _, s := range []float64{0.5, 1.25, 0} {
		require.NoError(t, l.AppendPlainTiming(path, s))
	}

	assert.Equal(t, []string{"0.500000", "1.250000", "0.000000"}, readLines(t, path))
}

func TestAppendPlainTiming_PreservesExistingContent(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.TimingLogFileName)
	require.NoError(t, os.WriteFile(path, []byte("9.000000\n"), domain.FilePerm))

	require.NoError(t, l.AppendPlainTiming(path, 1))

	assert.Equal(t, []string{"9.000000", "1.000000"}, readLines(t, path))
}

func TestAppendPlainTiming_RoundTrip(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.TimingLogFileName)

	require.NoError(t, l.AppendPlainTiming(path, 3.1415926))

	got, err := strconv.ParseFloat(readLines(t, path)[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 3.1415926, got, 1e-6)
}

func TestAppendPlainTiming_InvalidDuration(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.TimingLogFileName)

	for _, s := range []float64{-1, math.NaN()} {
		err := l.AppendPlainTiming(path, s)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidDuration.Error())
	}

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "invalid input must not touch the log")
}

func TestAppendPlainTiming_Unwritable(t *testing.T) {
	l, _ := newLog(t)
	// The log path is an existing directory.
	path := t.TempDir()

	err := l.AppendPlainTiming(path, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTimingLogWriteFailed.Error())
}

func TestAppendExecutionRecord(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.RecordLogFileName)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	first, err := domain.NewExecutionRecord(at, 1.5, "abc")
	require.NoError(t, err)
	second, err := domain.NewExecutionRecord(at.Add(time.Minute), 2, "")
	require.NoError(t, err)

	require.NoError(t, l.AppendExecutionRecord(path, first))
	require.NoError(t, l.AppendExecutionRecord(path, second.WithWorkload("make", 0)))

	lines := readLines(t, path)
	require.Len(t, lines, 2)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "2026-03-04T05:06:07Z", decoded["timestamp"])
	assert.InDelta(t, 1.5, decoded["execution_time_seconds"], 1e-9)
	assert.Equal(t, "abc", decoded["commit_hash"])
	assert.NotContains(t, decoded, "command")
	assert.NotContains(t, decoded, "exit_code")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &decoded))
	assert.Equal(t, domain.UnknownCommit, decoded["commit_hash"])
	assert.Equal(t, "make", decoded["command"])
	assert.InDelta(t, 0, decoded["exit_code"], 0)
}

func TestAppendExecutionRecord_EmptyCommitNormalized(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.RecordLogFileName)

	require.NoError(t, l.AppendExecutionRecord(path, domain.ExecutionRecord{Timestamp: time.Now()}))

	recs, err := l.ReadRecords(path, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.UnknownCommit, recs[0].CommitHash)
}

func TestAppendExecutionRecord_CreatesParentDir(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), "logs", "nested", domain.RecordLogFileName)

	rec, err := domain.NewExecutionRecord(time.Now(), 1, "abc")
	require.NoError(t, err)
	require.NoError(t, l.AppendExecutionRecord(path, rec))

	assert.FileExists(t, path)
}

func TestAppendExecutionRecord_ConcurrentAppendsStayWhole(t *testing.T) {
	l, _ := newLog(t)
	path := filepath.Join(t.TempDir(), domain.RecordLogFileName)

	const writers = 16
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := domain.NewExecutionRecord(time.Now(), float64(i), "abc")
			assert.NoError(t, err)
			assert.NoError(t, l.AppendExecutionRecord(path, rec))
		}()
	}
	wg.Wait()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec domain.ExecutionRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec), "line %d must be a complete record", count)
		count++
	}
	assert.Equal(t, writers, count)
}

func TestReadRecords(t *testing.T) {
	l, log := newLog(t)
	path := filepath.Join(t.TempDir(), domain.RecordLogFileName)

	for i := range 5 {
		rec, err := domain.NewExecutionRecord(time.Now(), float64(i), "abc")
		require.NoError(t, err)
		require.NoError(t, l.AppendExecutionRecord(path, rec))
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	require.NoError(t, err)
	_, err = f.WriteString("not json\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	log.EXPECT().Warn(gomock.Any()).Times(2)

	all, err := l.ReadRecords(path, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)

	last, err := l.ReadRecords(path, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.InDelta(t, 3.0, last[0].ExecutionTimeSeconds, 1e-9)
	assert.InDelta(t, 4.0, last[1].ExecutionTimeSeconds, 1e-9)
}

func TestReadRecords_MissingLog(t *testing.T) {
	l, _ := newLog(t)

	recs, err := l.ReadRecords(filepath.Join(t.TempDir(), "missing.jsonl"), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReadRecords_SkipsOversizedLine(t *testing.T) {
	l, log := newLog(t)
	path := filepath.Join(t.TempDir(), domain.RecordLogFileName)

	big, err := domain.NewExecutionRecord(time.Now(), 1, "abc")
	require.NoError(t, err)
	big = big.WithWorkload(strings.Repeat("x", 2*1024*1024), 0)
	require.NoError(t, l.AppendExecutionRecord(path, big))

	small, err := domain.NewExecutionRecord(time.Now(), 2, "def")
	require.NoError(t, err)
	require.NoError(t, l.AppendExecutionRecord(path, small))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	require.NoError(t, err)
	_, err = f.WriteString(`{"timestamp":"2026-01-02T03:04:05Z","execution_time_seconds":3,"commit_hash":"ghi"}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	log.EXPECT().Warn("skipped 1 malformed records in " + path)

	recs, err := l.ReadRecords(path, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "def", recs[0].CommitHash)
	assert.Equal(t, "ghi", recs[1].CommitHash, "a final line without newline is still read")
}
