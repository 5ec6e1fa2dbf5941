package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/adapters/host"     //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/adapters/reporter" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoist/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			host.NodeID,
			reporter.NodeID,
			progress.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.SnapshotLoader](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.EnvironmentProber](ctx)
			if err != nil {
				return nil, err
			}

			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			prog, err := graft.Dep[ports.ProgressRecorder](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, prober, rep, prog), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			reporter.NodeID,
			progress.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			prog, err := graft.Dep[ports.ProgressRecorder](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:      application,
				Reporter: rep,
				Progress: prog,
			}, nil
		},
	})
}
