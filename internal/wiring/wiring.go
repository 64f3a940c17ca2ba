// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/chunkgraph/internal/adapters/cas"
	_ "go.trai.ch/chunkgraph/internal/adapters/config"
	_ "go.trai.ch/chunkgraph/internal/adapters/hasher"
	_ "go.trai.ch/chunkgraph/internal/adapters/logger"
	_ "go.trai.ch/chunkgraph/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/chunkgraph/internal/app"
	_ "go.trai.ch/chunkgraph/internal/engine/reporter"
)
