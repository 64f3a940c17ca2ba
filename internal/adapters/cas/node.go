package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
)

// NodeID is the unique identifier for the report store Graft node.
const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportStore, error) {
			store, err := NewStore(domain.DefaultReportsPath())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
