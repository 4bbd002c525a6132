// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modelc/internal/adapters/cas"
	_ "go.trai.ch/modelc/internal/adapters/config"
	_ "go.trai.ch/modelc/internal/adapters/fs"
	_ "go.trai.ch/modelc/internal/adapters/logger"
	_ "go.trai.ch/modelc/internal/adapters/shell"
	_ "go.trai.ch/modelc/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/modelc/internal/app"
	_ "go.trai.ch/modelc/internal/engine/scheduler"
)
