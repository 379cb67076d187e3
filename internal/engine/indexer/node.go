package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/adapters/clock"
	"go.trai.ch/snap/internal/adapters/fs"
	"go.trai.ch/snap/internal/adapters/logger"
	"go.trai.ch/snap/internal/adapters/manifest"
	"go.trai.ch/snap/internal/core/ports"
)

// NodeID is the unique identifier for the indexer Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[*Indexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.EnumeratorNodeID, manifest.NodeID, clock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Indexer, error) {
			enumerator, err := graft.Dep[ports.Enumerator](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ManifestStore](ctx)
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
			return New(enumerator, store, clk, log), nil
		},
	})
}
