package holder

import (
	"fmt"
	"strings"
)

// Flatten returns every leaf value in the tree keyed by its dot-notation path.
// It fails with ErrCycle if a Node is stored inside its own subtree.
func (n *Node) Flatten() (map[string]any, error) {
	flat := make(map[string]any)
	if err := flattenNode(n, "", flat, make(map[*Node]bool)); err != nil {
		return nil, err
	}
	return flat, nil
}

// Map returns a nested map copy of the tree. Child Nodes become
// map[string]any, plain values are shared with the tree.
// It fails with ErrCycle if a Node is stored inside its own subtree.
func (n *Node) Map() (map[string]any, error) {
	return nodeToMap(n, "", make(map[*Node]bool))
}

// Debug returns a formatted listing of every leaf path and its value
func (n *Node) Debug() string {
	var b strings.Builder
	b.WriteString("Holder Debug Info:\n")

	flat, err := n.Flatten()
	if err != nil {
		b.WriteString(fmt.Sprintf("  error: %v\n", err))
		return b.String()
	}

	for _, path := range sortedKeys(flat) {
		value := flat[path]
		b.WriteString(fmt.Sprintf("  %s = %v (%T)\n", path, value, value))
	}
	return b.String()
}
