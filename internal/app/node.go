package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/adapters/clock"
	"go.trai.ch/snap/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/snap/internal/adapters/execlog"
	"go.trai.ch/snap/internal/adapters/git"
	"go.trai.ch/snap/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/snap/internal/adapters/manifest"
	"go.trai.ch/snap/internal/adapters/telemetry"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/snap/internal/engine/indexer"
	"go.trai.ch/snap/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			indexer.NodeID,
			execlog.NodeID,
			manifest.NodeID,
			git.ResolverNodeID,
			telemetry.NodeID,
			clock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}
	idx, err := graft.Dep[*indexer.Indexer](ctx)
	if err != nil {
		return nil, err
	}
	execLog, err := graft.Dep[ports.ExecutionLogger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.CommitResolver](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	clk, err := graft.Dep[clockwork.Clock](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, runner, idx, execLog, store, resolver, tracer, clk, log), nil
}
