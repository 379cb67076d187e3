// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/snap/internal/adapters/clock"
	_ "go.trai.ch/snap/internal/adapters/config"
	_ "go.trai.ch/snap/internal/adapters/execlog"
	_ "go.trai.ch/snap/internal/adapters/fs"
	_ "go.trai.ch/snap/internal/adapters/git"
	_ "go.trai.ch/snap/internal/adapters/logger"
	_ "go.trai.ch/snap/internal/adapters/manifest"
	_ "go.trai.ch/snap/internal/adapters/shell"
	_ "go.trai.ch/snap/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/snap/internal/app"
	_ "go.trai.ch/snap/internal/engine/indexer"
	_ "go.trai.ch/snap/internal/engine/pipeline"
)
