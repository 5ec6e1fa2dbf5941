// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hoist/internal/adapters/host"
	_ "go.trai.ch/hoist/internal/adapters/manifest"
	_ "go.trai.ch/hoist/internal/adapters/progress"
	_ "go.trai.ch/hoist/internal/adapters/reporter"
	// Register app nodes.
	_ "go.trai.ch/hoist/internal/app"
)
