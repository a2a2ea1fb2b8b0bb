// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pharbuild/internal/adapters/cas"
	_ "go.trai.ch/pharbuild/internal/adapters/composer"
	_ "go.trai.ch/pharbuild/internal/adapters/config"
	_ "go.trai.ch/pharbuild/internal/adapters/external"
	_ "go.trai.ch/pharbuild/internal/adapters/fs"
	_ "go.trai.ch/pharbuild/internal/adapters/git"
	_ "go.trai.ch/pharbuild/internal/adapters/logger"
	_ "go.trai.ch/pharbuild/internal/adapters/shell"
	_ "go.trai.ch/pharbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/pharbuild/internal/app"
	_ "go.trai.ch/pharbuild/internal/engine/compiler"
)
