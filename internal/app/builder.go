package app

import "go.trai.ch/hoist/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Reporter ports.Reporter
	Progress ports.ProgressRecorder
}
