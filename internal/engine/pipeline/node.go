package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/adapters/clock"
	"go.trai.ch/snap/internal/adapters/execlog"
	"go.trai.ch/snap/internal/adapters/git"
	"go.trai.ch/snap/internal/adapters/logger"
	"go.trai.ch/snap/internal/adapters/shell"
	"go.trai.ch/snap/internal/adapters/telemetry"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/snap/internal/engine/indexer"
)

// NodeID is the unique identifier for the pipeline runner Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			execlog.NodeID,
			indexer.NodeID,
			shell.NodeID,
			git.PublisherNodeID,
			git.ResolverNodeID,
			telemetry.NodeID,
			clock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			execLog, err := graft.Dep[ports.ExecutionLogger](ctx)
			if err != nil {
				return nil, err
			}
			idx, err := graft.Dep[*indexer.Indexer](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			publisher, err := graft.Dep[ports.Publisher](ctx)
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
			return NewRunner(execLog, idx, executor, publisher, resolver, tracer, clk, log), nil
		},
	})
}
