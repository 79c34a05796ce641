// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildargs/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/buildargs/internal/app"
	_ "go.trai.ch/buildargs/internal/engine/convert"
)
