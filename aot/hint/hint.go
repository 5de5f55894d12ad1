// Package hint records runtime reflection metadata gathered while generating
// ahead-of-time code. The emitted program cannot discover this metadata
// dynamically, so generation captures it in a registry that a later
// packaging step consumes.
package hint

import "sync"

// InterfaceProxyHint records one set of interfaces that must stay
// reflectively accessible at run time because a dynamic proxy implementing
// them is synthesized there.
type InterfaceProxyHint struct {
	// Interfaces are the canonical interface names the proxy implements,
	// in declaration order.
	Interfaces []string
}

// ProxyHints is an append-only collection of dynamic-proxy requirements.
// Appends are safe under concurrent writers; no ordering between entries is
// guaranteed or assumed, and duplicate entries are harmless.
type ProxyHints struct {
	mu    sync.Mutex
	hints []InterfaceProxyHint
}

// RegisterInterfaceProxy records that a dynamic proxy implementing the given
// interfaces is required at run time.
func (p *ProxyHints) RegisterInterfaceProxy(interfaces ...string) {
	entry := InterfaceProxyHint{Interfaces: append([]string(nil), interfaces...)}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hints = append(p.hints, entry)
}

// Hints returns a snapshot of the recorded entries.
func (p *ProxyHints) Hints() []InterfaceProxyHint {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]InterfaceProxyHint, len(p.hints))
	copy(out, p.hints)
	return out
}

// RuntimeHints is the process-wide registry of reflection metadata for one
// generation pass. It is write-only during generation and consumed once the
// pass completes.
type RuntimeHints struct {
	proxies ProxyHints
}

// NewRuntimeHints creates an empty registry for a generation pass.
func NewRuntimeHints() *RuntimeHints {
	return &RuntimeHints{}
}

// Proxies returns the dynamic-proxy hints.
func (h *RuntimeHints) Proxies() *ProxyHints {
	return &h.proxies
}
