package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/ports"
)

const NodeID graft.ID = "adapter.host_prober"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvironmentProber, error) {
			return New(), nil
		},
	})
}
