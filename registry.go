package holder

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// RegistryOptions configures a Registry
type RegistryOptions struct {
	// Logger receives debug records when a namespace is created.
	// If nil, records are discarded.
	Logger *slog.Logger
}

// Registry maps names to top-level Nodes. A name, once resolved, keeps
// returning the same Node for the lifetime of the Registry.
type Registry struct {
	nodes  map[string]*Node
	logger *slog.Logger
	mutex  sync.RWMutex
}

// Default is the unnamed scratch namespace, independent of any Registry.
var Default = New()

// global is the process-wide registry behind Resolve. It is never reset.
var global = NewRegistry()

// NewRegistry creates an empty Registry that discards its log records.
func NewRegistry() *Registry {
	return NewRegistryWithOptions(RegistryOptions{})
}

// NewRegistryWithOptions creates an empty Registry with custom options.
func NewRegistryWithOptions(opts RegistryOptions) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		nodes:  make(map[string]*Node),
		logger: logger,
	}
}

// SetLogger replaces the logger that receives namespace creation records.
// A nil logger discards them.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.logger = logger
}

// Global returns the process-wide Registry used by Resolve.
func Global() *Registry {
	return global
}

// Resolve returns the Node registered under name in the process-wide
// Registry, creating it on first use.
func Resolve(name any) (*Node, error) {
	return global.Resolve(name)
}

// MustResolve is like Resolve but panics on error
func MustResolve(name any) *Node {
	node, err := global.Resolve(name)
	if err != nil {
		panic(fmt.Sprintf("holder: %v", err))
	}
	return node
}

// Resolve returns the Node registered under name, creating and registering
// an empty one if needed. name must be a string; any other type fails with
// ErrInvalidKeyType and registers nothing.
func (r *Registry) Resolve(name any) (*Node, error) {
	key, ok := name.(string)
	if !ok {
		return nil, fmt.Errorf("%w: got %T (%v)", ErrInvalidKeyType, name, name)
	}
	return r.Node(key), nil
}

// Node returns the Node registered under name, creating it if needed.
func (r *Registry) Node(name string) *Node {
	r.mutex.RLock()
	node, exists := r.nodes[name]
	r.mutex.RUnlock()
	if exists {
		return node
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if node, exists := r.nodes[name]; exists {
		return node
	}

	node = New()
	r.nodes[name] = node
	r.logger.Debug("namespace created", "name", name)
	return node
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.nodes))
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot flattens every registered namespace into one Snapshot.
// Each namespace name is the first segment of its keys.
func (r *Registry) Snapshot() (*Snapshot, error) {
	r.mutex.RLock()
	roots := make(map[string]*Node, len(r.nodes))
	for name, node := range r.nodes {
		roots[name] = node
	}
	r.mutex.RUnlock()

	return newSnapshot(roots)
}
