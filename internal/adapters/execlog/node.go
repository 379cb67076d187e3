package execlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snap/internal/adapters/logger"
	"go.trai.ch/snap/internal/core/ports"
)

// NodeID is the unique identifier for the execution log Graft node.
const NodeID graft.ID = "adapter.execution_logger"

func init() {
	graft.Register(graft.Node[ports.ExecutionLogger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ExecutionLogger, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
