package holder

import (
	"fmt"
	"strings"
	"sync"
)

// ReservedPrefix marks bookkeeping names that are kept out of the visible mapping.
const ReservedPrefix = "_"

// Node is a namespace that creates an empty child Node the first time an
// unknown name is read. Values are either arbitrary caller-owned objects or
// child Nodes.
//
// Names starting with ReservedPrefix are stored in a private bookkeeping map
// by Set and are refused by Get with ErrAttributeNotFound. A configuration key
// that happens to use the prefix is treated the same way and cannot be read.
//
// The zero value is an empty Node ready for use.
type Node struct {
	nodes    map[string]any // visible configuration entries
	internal map[string]any // reserved names, never returned by Get or Children
	mutex    sync.RWMutex
}

// New creates an empty Node.
func New() *Node {
	return &Node{
		nodes:    make(map[string]any),
		internal: make(map[string]any),
	}
}

// Get returns the value stored under name. If nothing is stored yet, a new
// empty Node is stored under name and returned; a later Get returns that same
// Node. Get fails only for reserved names.
func (n *Node) Get(name string) (any, error) {
	if isReserved(name) {
		return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}

	n.mutex.RLock()
	value, exists := n.nodes[name]
	n.mutex.RUnlock()
	if exists {
		return value, nil
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()

	// Another reader may have created it between the two locks
	if value, exists := n.nodes[name]; exists {
		return value, nil
	}

	if n.nodes == nil {
		n.nodes = make(map[string]any)
	}
	child := New()
	n.nodes[name] = child
	return child, nil
}

// Set stores value under name, replacing whatever was there, including a
// whole child subtree. Reserved names go to the bookkeeping map instead.
func (n *Node) Set(name string, value any) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if isReserved(name) {
		if n.internal == nil {
			n.internal = make(map[string]any)
		}
		n.internal[name] = value
		return
	}

	if n.nodes == nil {
		n.nodes = make(map[string]any)
	}
	n.nodes[name] = value
}

// Children returns a copy of the visible name to value mapping.
// Child Nodes in the copy are shared with n.
func (n *Node) Children() map[string]any {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	result := make(map[string]any, len(n.nodes))
	for name, value := range n.nodes {
		result[name] = value
	}
	return result
}

// Has reports whether name is present without creating it.
func (n *Node) Has(name string) bool {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	_, exists := n.nodes[name]
	return exists
}

// lookup returns the value stored under name without creating it.
func (n *Node) lookup(name string) (any, bool) {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	value, exists := n.nodes[name]
	return value, exists
}

// Len returns the number of visible entries.
func (n *Node) Len() int {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	return len(n.nodes)
}

// Child is like Get but requires the stored value to be a Node.
func (n *Node) Child(name string) (*Node, error) {
	value, err := n.Get(name)
	if err != nil {
		return nil, err
	}

	child, ok := value.(*Node)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T", ErrNotANode, name, value)
	}
	return child, nil
}

// MustChild is like Child but panics on error
func (n *Node) MustChild(name string) *Node {
	child, err := n.Child(name)
	if err != nil {
		panic(fmt.Sprintf("holder: %v", err))
	}
	return child
}

// isReserved reports whether name is a bookkeeping name.
func isReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}
