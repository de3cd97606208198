package holder

import (
	"fmt"
	"sort"
	"strings"
)

// splitPath splits a dot-notation path into its segments.
// Empty paths and empty segments ("a..b", ".a", "a.") are rejected.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in path %q", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

// isValidKeySegment checks if a single path segment is a valid bare key:
// ASCII letters, ASCII digits, underscores, and dashes (A-Za-z0-9_-).
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// joinPath appends key to a dot-notation prefix.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// enter marks n as an ancestor of the subtree being walked. It fails with
// ErrCycle if n is already one, i.e. the tree refers back into itself.
// Shared subtrees reached through different parents are not cycles.
func enter(n *Node, ancestors map[*Node]bool, path string) error {
	if ancestors[n] {
		if path == "" {
			path = "."
		}
		return fmt.Errorf("%w: %q refers back to an ancestor", ErrCycle, path)
	}
	ancestors[n] = true
	return nil
}

// flattenNode writes every leaf under n into flat, keyed by dot-notation path.
// Empty child Nodes contribute nothing.
func flattenNode(n *Node, prefix string, flat map[string]any, ancestors map[*Node]bool) error {
	if err := enter(n, ancestors, prefix); err != nil {
		return err
	}
	defer delete(ancestors, n)

	for key, value := range n.Children() {
		path := joinPath(prefix, key)

		if child, isNode := value.(*Node); isNode {
			if err := flattenNode(child, path, flat, ancestors); err != nil {
				return err
			}
		} else {
			flat[path] = value
		}
	}
	return nil
}

// nodeToMap converts the tree under n into nested map[string]any values.
// Empty child Nodes become empty maps.
func nodeToMap(n *Node, prefix string, ancestors map[*Node]bool) (map[string]any, error) {
	if err := enter(n, ancestors, prefix); err != nil {
		return nil, err
	}
	defer delete(ancestors, n)

	children := n.Children()
	nested := make(map[string]any, len(children))

	for key, value := range children {
		if child, isNode := value.(*Node); isNode {
			childMap, err := nodeToMap(child, joinPath(prefix, key), ancestors)
			if err != nil {
				return nil, err
			}
			nested[key] = childMap
		} else {
			nested[key] = value
		}
	}
	return nested, nil
}
