// Package app implements the application layer for snap.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/adapters/detector"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/snap/internal/engine/indexer"
	"go.trai.ch/snap/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *pipeline.Runner
	indexer      *indexer.Indexer
	execLog      ports.ExecutionLogger
	store        ports.ManifestStore
	resolver     ports.CommitResolver
	tracer       ports.Tracer
	clock        clockwork.Clock
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
	outputMode   string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner *pipeline.Runner,
	idx *indexer.Indexer,
	execLog ports.ExecutionLogger,
	store ports.ManifestStore,
	resolver ports.CommitResolver,
	tracer ports.Tracer,
	clock clockwork.Clock,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		indexer:      idx,
		execLog:      execLog,
		store:        store,
		resolver:     resolver,
		tracer:       tracer,
		clock:        clock,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects command output and workload output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// ConfigOptions select the configuration file and the flag overrides applied on top of it.
type ConfigOptions struct {
	Path    string
	Dir     string
	Project string
	Sort    *bool
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigOptions
	Command []string
	Commit  bool
	Push    bool
	Verbose bool
}

// IndexOptions configuration for the Index method.
type IndexOptions struct {
	ConfigOptions
	Show bool
}

// HistoryOptions configuration for the History method.
type HistoryOptions struct {
	ConfigOptions
	Limit int
	JSON  bool
}

// Run times the optional workload and records the run. When any step fails
// the error wraps domain.ErrPipelineFailed; each step error has already been
// logged.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	startedAt := a.clock.Now()
	a.setVerbose(opts.Verbose)

	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}

	report, runErr := a.runner.Run(ctx, pipeline.Options{
		StartedAt: startedAt,
		Command:   opts.Command,
		Config:    cfg,
		Publish:   cfg.Publish.Enabled || opts.Commit || opts.Push,
		Push:      cfg.Publish.Push || opts.Push,
		Stdout:    a.stdout,
		Stderr:    a.stderr,
	})
	if report != nil {
		writeReport(a.stdout, a.plainOutput(), report)
	}
	return runErr
}

// Index rebuilds the workspace manifest, or prints the current one when Show is set.
func (a *App) Index(ctx context.Context, opts IndexOptions) error {
	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}

	if opts.Show {
		idx, err := a.store.Load(cfg.IndexPath)
		if err != nil {
			return err
		}
		return writeJSON(a.stdout, idx, domain.ErrIndexMarshalFailed)
	}

	ix := a.indexer.With(indexer.Settings{
		IndexPath: cfg.IndexPath,
		Sort:      cfg.Sort,
		Scan:      cfg.ScanOptions(),
	})

	ctx, span := a.tracer.Start(ctx, pipeline.StepBuildIndex, ports.WithAttribute("path", cfg.IndexPath))
	defer span.End()

	idx, err := ix.BuildAndPersist(ctx, cfg.Dir, cfg.Project, a.resolver)
	if err != nil {
		span.RecordError(err)
		return err
	}

	writeIndexSummary(a.stdout, a.plainOutput(), idx, cfg.IndexPath)
	return nil
}

// History prints the last Limit records of the execution log.
func (a *App) History(_ context.Context, opts HistoryOptions) error {
	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}

	records, err := a.execLog.ReadRecords(cfg.RecordLog, opts.Limit)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(a.stdout)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
			}
		}
		return nil
	}

	if len(records) == 0 {
		a.logger.Info("no execution records in " + cfg.RecordLog)
		return nil
	}
	writeHistory(a.stdout, a.plainOutput(), records)
	return nil
}

// Close flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

func (a *App) loadConfig(opts ConfigOptions) (*domain.Config, error) {
	path := opts.Path
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Dir != "" {
		cfg.Dir = opts.Dir
	}
	if opts.Project != "" {
		if err := domain.ValidateProjectName(opts.Project); err != nil {
			return nil, err
		}
		cfg.Project = opts.Project
	}
	if opts.Sort != nil {
		cfg.Sort = *opts.Sort
	}

	return cfg, nil
}

type verboser interface {
	SetVerbose(enable bool)
}

type jsonSwitcher interface {
	SetJSON(enable bool)
}

func (a *App) setVerbose(enable bool) {
	if v, ok := a.logger.(verboser); ok {
		v.SetVerbose(enable)
	}
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if j, ok := a.logger.(jsonSwitcher); ok {
		j.SetJSON(enable)
	}
}

// SetOutputMode selects styled or plain command output: "auto", "pretty" or "plain".
func (a *App) SetOutputMode(mode string) error {
	if _, err := detector.ParseMode(mode); err != nil {
		return err
	}
	a.outputMode = mode
	return nil
}

// plainOutput reports whether summaries are written without escape sequences.
// Auto mode is plain unless stdout is a terminal outside CI.
func (a *App) plainOutput() bool {
	return detector.ResolveMode(detector.DetectEnvironment(a.stdout), a.outputMode) == detector.ModePlain
}

func writeJSON(w io.Writer, v any, sentinel error) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, sentinel.Error())
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
