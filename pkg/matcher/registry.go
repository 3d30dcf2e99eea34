package matcher

import (
	"fmt"
	"sync"
)

// Probe is an external capability check (e.g. canWrite for a
// "writable" matcher). It must be total over the values it is
// registered for.
type Probe func(actual any) bool

// ProbeRegistry holds named capability probes. It is safe for
// concurrent use.
type ProbeRegistry struct {
	mu     sync.RWMutex
	probes map[string]Probe
}

// NewProbeRegistry creates an empty probe registry.
func NewProbeRegistry() *ProbeRegistry {
	return &ProbeRegistry{
		probes: make(map[string]Probe),
	}
}

// Register adds a probe under the given name. Returns an error
// if the name is already registered.
func (r *ProbeRegistry) Register(
	name string,
	probe Probe,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.probes[name]; exists {
		return fmt.Errorf(
			"capability probe already registered: %s", name,
		)
	}

	r.probes[name] = probe
	return nil
}

// Lookup returns the probe registered under name.
func (r *ProbeRegistry) Lookup(name string) (Probe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	probe, exists := r.probes[name]
	return probe, exists
}

// Has returns true if a probe is registered under name.
func (r *ProbeRegistry) Has(name string) bool {
	_, exists := r.Lookup(name)
	return exists
}
