package holder

import (
	"fmt"
	"strings"
)

// argValue is one path/value pair parsed from the command line.
type argValue struct {
	path  string
	value any
}

// ApplyArgs stores command-line style assignments into the tree.
// Accepted forms are "--key.path value", "--key.path=value" and a bare
// "--flag", which stores true. Non-flag arguments and "--" are skipped.
// Nothing is stored if any argument is malformed.
func (n *Node) ApplyArgs(args []string) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	// Check every assignment before the first write
	leaves := make(map[string]bool, len(parsed))
	for _, arg := range parsed {
		if err := n.checkArgPath(arg.path, leaves); err != nil {
			return fmt.Errorf("failed to apply --%s: %w", arg.path, err)
		}
		leaves[arg.path] = true
	}

	for _, arg := range parsed {
		if err := n.SetPath(arg.path, arg.value); err != nil {
			return fmt.Errorf("failed to apply --%s: %w", arg.path, err)
		}
	}
	return nil
}

// checkArgPath reports whether SetPath(path, ...) would fail once the
// assignments in leaves have been applied. Nothing is created.
func (n *Node) checkArgPath(path string, leaves map[string]bool) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	current := n
	for i, segment := range segments[:len(segments)-1] {
		if isReserved(segment) {
			return fmt.Errorf("path %q at segment %d: %w: %s", path, i, ErrAttributeNotFound, segment)
		}

		prefix := strings.Join(segments[:i+1], ".")
		if leaves[prefix] {
			return fmt.Errorf("path %q at segment %d: %w: %s is assigned a value", path, i, ErrNotANode, prefix)
		}

		if current == nil {
			continue // below a Node that does not exist yet
		}
		value, exists := current.lookup(segment)
		if !exists {
			current = nil
			continue
		}
		child, isNode := value.(*Node)
		if !isNode {
			return fmt.Errorf("path %q at segment %d: %w: %s holds %T", path, i, ErrNotANode, segment, value)
		}
		current = child
	}
	return nil
}

// parseArgs processes command-line arguments into ordered path/value pairs.
func parseArgs(args []string) ([]argValue, error) {
	var result []argValue
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" argument if used as a separator
			i++
			continue
		}

		var keyPath string
		var valueStr string

		if strings.Contains(argContent, "=") {
			parts := strings.SplitN(argContent, "=", 2)
			keyPath = parts[0]
			valueStr = parts[1]
			i++
		} else {
			keyPath = argContent
			isBoolFlag := i+1 >= len(args) || strings.HasPrefix(args[i+1], "--")

			if isBoolFlag {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		segments := strings.Split(keyPath, ".")
		for _, segment := range segments {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("%w: invalid command-line key segment %q in path %q", ErrInvalidPath, segment, keyPath)
			}
		}

		result = append(result, argValue{path: keyPath, value: parseValue(valueStr)})
	}

	return result, nil
}

// parseValue keeps values as strings apart from the literals true and false.
// Surrounding double quotes are removed.
func parseValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
