package module

import "langrelay/internal/services/api/detect/domain"

// Ports are exported to other modules
type Ports struct {
	Detector domain.DetectorPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
