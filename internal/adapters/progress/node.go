package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/ports"
)

const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.ProgressRecorder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProgressRecorder, error) {
			return New(), nil
		},
	})
}
