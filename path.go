package holder

import "fmt"

// GetPath reads a dot-notation path such as "db.pool.size", creating every
// missing segment along the way exactly as chained Get calls would.
// Walking through a plain value fails with ErrNotANode.
func (n *Node) GetPath(path string) (any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	parent, err := n.walk(segments[:len(segments)-1], path)
	if err != nil {
		return nil, err
	}
	return parent.Get(segments[len(segments)-1])
}

// SetPath stores value at a dot-notation path, creating missing parents.
// A reserved last segment is stored in the parent's bookkeeping map, like Set.
func (n *Node) SetPath(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	parent, err := n.walk(segments[:len(segments)-1], path)
	if err != nil {
		return err
	}
	parent.Set(segments[len(segments)-1], value)
	return nil
}

// walk descends through segments, requiring each step to be a Node.
func (n *Node) walk(segments []string, path string) (*Node, error) {
	current := n
	for i, segment := range segments {
		child, err := current.Child(segment)
		if err != nil {
			return nil, fmt.Errorf("path %q at segment %d: %w", path, i, err)
		}
		current = child
	}
	return current, nil
}
