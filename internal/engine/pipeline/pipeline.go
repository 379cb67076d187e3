// Package pipeline sequences one snap run: the optional workload, the
// execution logs, the workspace index and the optional publish.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/snap/internal/engine/indexer"
)

// Step names, also used as span names.
const (
	StepWorkload     = "workload"
	StepAppendTiming = "append_timing"
	StepAppendRecord = "append_record"
	StepBuildIndex   = "build_index"
	StepPublish      = "publish"
)

// commitTimeFormat stamps the publish commit message.
const commitTimeFormat = "2006-01-02 15:04:05"

// Options describe a single run.
type Options struct {
	// StartedAt is when the run began. Zero means "now".
	StartedAt time.Time
	// Command is the workload to time. Empty means no workload.
	Command []string
	// Config holds the resolved artifact locations and scan settings.
	Config *domain.Config
	// Publish commits the artifacts after a run; Push also pushes them.
	Publish bool
	Push    bool
	// Stdout and Stderr receive the workload's output.
	Stdout io.Writer
	Stderr io.Writer
}

// StepResult is the outcome of one pipeline step.
type StepResult struct {
	Name string
	Path string
	Err  error
}

// Report summarizes a run.
type Report struct {
	Elapsed   float64
	Commit    string
	ExitCode  *int
	Index     *domain.WorkspaceIndex
	Published string
	Steps     []StepResult
}

// Failed returns the steps that did not succeed.
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Runner executes the pipeline.
type Runner struct {
	execLog   ports.ExecutionLogger
	indexer   *indexer.Indexer
	executor  ports.Executor
	publisher ports.Publisher
	resolver  ports.CommitResolver
	tracer    ports.Tracer
	clock     clockwork.Clock
	logger    ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(
	execLog ports.ExecutionLogger,
	idx *indexer.Indexer,
	executor ports.Executor,
	publisher ports.Publisher,
	resolver ports.CommitResolver,
	tracer ports.Tracer,
	clock clockwork.Clock,
	logger ports.Logger,
) *Runner {
	return &Runner{
		execLog:   execLog,
		indexer:   idx,
		executor:  executor,
		publisher: publisher,
		resolver:  resolver,
		tracer:    tracer,
		clock:     clock,
		logger:    logger,
	}
}

// Run executes every step once, in order. A failing step does not stop the
// steps after it; partial artifacts are kept. When any step failed the
// returned error joins domain.ErrPipelineFailed with every step error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}

	startedAt := opts.StartedAt
	if startedAt.IsZero() {
		startedAt = r.clock.Now()
	}

	ctx, span := r.tracer.Start(ctx, "run", ports.WithAttribute("project", cfg.Project))
	defer span.End()

	report := &Report{}

	if len(opts.Command) > 0 {
		r.step(ctx, report, StepWorkload, "", func(ctx context.Context) error {
			code, err := r.executor.Execute(ctx, opts.Command, "", opts.Stdout, opts.Stderr)
			report.ExitCode = &code
			return err
		})
	}

	report.Elapsed = r.clock.Since(startedAt).Seconds()
	report.Commit = indexer.ResolveCommit(ctx, r.resolver, cfg.Dir, r.logger)
	span.SetAttribute("commit", report.Commit)
	span.SetAttribute("elapsed_seconds", report.Elapsed)

	r.step(ctx, report, StepAppendTiming, cfg.TimingLog, func(context.Context) error {
		return r.execLog.AppendPlainTiming(cfg.TimingLog, report.Elapsed)
	})

	r.step(ctx, report, StepAppendRecord, cfg.RecordLog, func(context.Context) error {
		rec, err := domain.NewExecutionRecord(r.clock.Now().UTC(), report.Elapsed, report.Commit)
		if err != nil {
			return err
		}
		if report.ExitCode != nil {
			rec = rec.WithWorkload(strings.Join(opts.Command, " "), *report.ExitCode)
		}
		return r.execLog.AppendExecutionRecord(cfg.RecordLog, rec)
	})

	r.step(ctx, report, StepBuildIndex, cfg.IndexPath, func(ctx context.Context) error {
		ix := r.indexer.With(indexer.Settings{
			IndexPath: cfg.IndexPath,
			Sort:      cfg.Sort,
			Scan:      cfg.ScanOptions(),
		})
		commit := report.Commit
		idx, err := ix.BuildAndPersist(ctx, cfg.Dir, cfg.Project, ports.ResolverFunc(
			func(context.Context, string) (string, error) { return commit, nil },
		))
		report.Index = idx
		return err
	})

	if opts.Publish {
		r.step(ctx, report, StepPublish, cfg.Dir, func(ctx context.Context) error {
			hash, err := r.publisher.Publish(ctx, domain.PublishRequest{
				Dir:     cfg.Dir,
				Message: CommitMessage(r.clock.Now()),
				Author:  cfg.Publish.Author,
				Email:   cfg.Publish.Email,
				Push:    opts.Push,
			})
			report.Published = hash
			return err
		})
	}

	failed := report.Failed()
	if len(failed) == 0 {
		return report, nil
	}

	errs := make([]error, 0, len(failed)+1)
	errs = append(errs, domain.ErrPipelineFailed)
	for _, s := range failed {
		errs = append(errs, s.Err)
	}
	span.RecordError(domain.ErrPipelineFailed)
	return report, errors.Join(errs...)
}

// step runs fn inside its own span and records the outcome.
func (r *Runner) step(ctx context.Context, report *Report, name, path string, fn func(context.Context) error) {
	ctx, span := r.tracer.Start(ctx, name)
	defer span.End()
	if path != "" {
		span.SetAttribute("path", path)
	}

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		r.logger.Error(err)
	}

	report.Steps = append(report.Steps, StepResult{Name: name, Path: path, Err: err})
}

// CommitMessage returns the message used when publishing the artifacts.
func CommitMessage(at time.Time) string {
	return fmt.Sprintf("Auto: log, index, and manifest update [%s]", at.Format(commitTimeFormat))
}
