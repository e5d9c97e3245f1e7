package module

import "langrelay/internal/services/api/messages/domain"

// Ports are exported to other modules
type Ports struct {
	Messages domain.MessagesPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
