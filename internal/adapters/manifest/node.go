package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/ports"
)

const NodeID graft.ID = "adapter.manifest_loader"

func init() {
	graft.Register(graft.Node[ports.SnapshotLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SnapshotLoader, error) {
			return &FileLoader{}, nil
		},
	})
}
