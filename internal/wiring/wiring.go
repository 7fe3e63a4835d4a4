// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taskrun/internal/adapters/authors"
	_ "go.trai.ch/taskrun/internal/adapters/config"
	_ "go.trai.ch/taskrun/internal/adapters/fs"
	_ "go.trai.ch/taskrun/internal/adapters/lint"
	_ "go.trai.ch/taskrun/internal/adapters/logger"
	_ "go.trai.ch/taskrun/internal/adapters/minify"
	_ "go.trai.ch/taskrun/internal/adapters/qunit"
	_ "go.trai.ch/taskrun/internal/adapters/replace"
	_ "go.trai.ch/taskrun/internal/adapters/server"
	_ "go.trai.ch/taskrun/internal/adapters/shell"
	_ "go.trai.ch/taskrun/internal/adapters/sizecache"
	_ "go.trai.ch/taskrun/internal/adapters/sizes"
	_ "go.trai.ch/taskrun/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/taskrun/internal/app"
	_ "go.trai.ch/taskrun/internal/engine/assembler"
	_ "go.trai.ch/taskrun/internal/engine/scheduler"
)
