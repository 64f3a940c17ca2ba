package reporter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/chunkgraph/internal/adapters/hasher"
	"go.trai.ch/chunkgraph/internal/core/ports"
)

// NodeID is the unique identifier for the reporter Graft node.
const NodeID graft.ID = "engine.reporter"

func init() {
	graft.Register(graft.Node[*Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{hasher.NodeID},
		Run: func(ctx context.Context) (*Reporter, error) {
			h, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return New(h), nil
		},
	})
}
