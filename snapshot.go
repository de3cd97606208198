package holder

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot is a read-only, flattened view of a tree taken at one point in time.
//
// Lookups ignore the order of path segments, so a value stored at
// server.eu.port can be fetched as Get("port", "server", "eu") or
// Get("port", "eu", "server"). Each leaf is stored once under its canonical
// key, the sorted segments of its path joined with ".". Lookups fall back from
// the most qualified key to the bare name.
type Snapshot struct {
	values map[string]any
}

// NewSnapshot flattens the tree under n. It fails with ErrDuplicateKey if two
// leaf paths hold the same segments in a different order, and with ErrCycle if
// a Node is stored inside its own subtree.
func NewSnapshot(n *Node) (*Snapshot, error) {
	s := &Snapshot{values: make(map[string]any)}
	if err := s.inspect(n, nil, make(map[*Node]bool)); err != nil {
		return nil, err
	}
	return s, nil
}

// newSnapshot builds a Snapshot from a top-level name to Node mapping.
func newSnapshot(roots map[string]*Node) (*Snapshot, error) {
	s := &Snapshot{values: make(map[string]any)}
	for _, name := range sortedNodeNames(roots) {
		if err := s.inspect(roots[name], []string{name}, make(map[*Node]bool)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// inspect walks children in sorted order so errors are deterministic.
func (s *Snapshot) inspect(n *Node, trail []string, ancestors map[*Node]bool) error {
	if err := enter(n, ancestors, strings.Join(trail, ".")); err != nil {
		return err
	}
	defer delete(ancestors, n)

	children := n.Children()
	for _, key := range sortedKeys(children) {
		path := make([]string, len(trail), len(trail)+1)
		copy(path, trail)
		path = append(path, key)

		value := children[key]
		if child, isNode := value.(*Node); isNode {
			if err := s.inspect(child, path, ancestors); err != nil {
				return err
			}
			continue
		}

		if err := s.save(path, value); err != nil {
			return err
		}
	}
	return nil
}

// save stores value under the canonical key of path.
func (s *Snapshot) save(path []string, value any) error {
	key := canonicalKey(path)
	if _, exists := s.values[key]; exists {
		return fmt.Errorf("%w: %s (from %s)", ErrDuplicateKey, key, strings.Join(path, "."))
	}
	s.values[key] = value
	return nil
}

// Get returns the value for name under the given qualifiers. Qualifiers are
// formatted with fmt.Sprint. The lookup tries all qualifiers first, then drops
// them from the end one at a time down to the bare name. A stored nil does not
// count as a hit and the lookup keeps falling back.
func (s *Snapshot) Get(name string, qualifiers ...any) (any, error) {
	tokens := make([]string, len(qualifiers))
	for i, q := range qualifiers {
		tokens[i] = fmt.Sprint(q)
	}

	for i := len(tokens); i >= 0; i-- {
		segments := make([]string, 0, i+1)
		segments = append(segments, tokens[:i]...)
		segments = append(segments, name)

		if value := s.values[canonicalKey(segments)]; value != nil {
			return value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, qualifiedKey(name, tokens))
}

// Keys returns every canonical key in the snapshot in sorted order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// Value retrieves a snapshot value as T. The stored value must already be a T;
// no conversion is attempted.
func Value[T any](s *Snapshot, name string, qualifiers ...any) (T, error) {
	var zero T

	raw, err := s.Get(name, qualifiers...)
	if err != nil {
		return zero, err
	}

	typed, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, not %T", ErrTypeMismatch, name, raw, zero)
	}
	return typed, nil
}

// canonicalKey joins the sorted segments with ".". Segment order is not part of the key.
func canonicalKey(segments []string) string {
	sorted := make([]string, len(segments))
	copy(sorted, segments)
	sort.Strings(sorted)
	return strings.Join(sorted, ".")
}

// qualifiedKey joins qualifiers and name into a dot-notation key.
func qualifiedKey(name string, qualifiers []string) string {
	if len(qualifiers) == 0 {
		return name
	}
	return strings.Join(qualifiers, ".") + "." + name
}

// sortedNodeNames returns the keys of m in sorted order.
func sortedNodeNames(m map[string]*Node) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
