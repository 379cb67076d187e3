package git

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/adapters/clock"
	"go.trai.ch/snap/internal/adapters/logger"
	"go.trai.ch/snap/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the commit resolver Graft node.
	ResolverNodeID graft.ID = "adapter.git.resolver"
	// PublisherNodeID is the unique identifier for the publisher Graft node.
	PublisherNodeID graft.ID = "adapter.git.publisher"
)

func init() {
	graft.Register(graft.Node[ports.CommitResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommitResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Publisher]{
		ID:        PublisherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{clock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Publisher, error) {
			clk, err := graft.Dep[clockwork.Clock](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(clk, log), nil
		},
	})
}
