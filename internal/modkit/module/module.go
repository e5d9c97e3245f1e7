// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "langrelay/internal/platform/net/http"
)

// Module mounts routes and exposes ports for cross wiring
// it lives apart from modkit so a module can export its own ports type without import cycles
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
