package engine

import (
	"fmt"
	"sync"

	"github.com/funvibe/exptrig/pkg/expr"
)

// Registry holds the function descriptors the host evaluator consults.
// It is built once during initialization, frozen, and then read by any
// number of concurrent evaluations. Registration is ordered so catalogs
// stay deterministic.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]*Definition
	order  []string
	frozen bool
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition under its symbol name. Registering after
// Freeze, twice under one name, or with an unusable definition is an error.
func (r *Registry) Register(def *Definition) error {
	if err := def.validate(); err != nil {
		return fmt.Errorf("%w: %q", err, def.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: %q", ErrFrozenRegistry, def.Name)
	}
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDefinition, def.Name)
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister is the init-path form of Register.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Freeze ends the build phase. After Freeze the registry is immutable and
// reads take no lock contention of interest.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup resolves a definition by symbol name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// ApplyBridge asks the named definition for its symbolic bridge form.
// False means no bridge exists for this call, which is not an error; callers
// are external symbolic tools, never core dispatch.
func (r *Registry) ApplyBridge(call *expr.Call) (expr.Expr, bool) {
	def, ok := r.Lookup(call.Head)
	if !ok || def.Bridge == nil {
		return nil, false
	}
	return def.Bridge.Bridge(call)
}

// Names returns the symbol names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
