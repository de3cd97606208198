package holder

import "errors"

var (
	// ErrAttributeNotFound is returned when reading a reserved (underscore-prefixed) name
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrInvalidKeyType is returned when a registry key is not a string
	ErrInvalidKeyType = errors.New("registry key must be a string")
	// ErrNotANode is returned when a path walks through a plain value
	ErrNotANode = errors.New("value is not a node")
	// ErrInvalidPath is returned for empty paths or malformed path segments
	ErrInvalidPath = errors.New("invalid path")
	// ErrKeyNotFound is returned when a snapshot has no value for a key or any of its fallbacks
	ErrKeyNotFound = errors.New("configuration key not found")
	// ErrDuplicateKey is returned when two leaves of a tree flatten to the same snapshot key
	ErrDuplicateKey = errors.New("configuration key already defined")
	// ErrTypeMismatch is returned when a snapshot value has a different type than requested
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrCycle is returned when a tree contains one of its own ancestors
	ErrCycle = errors.New("cycle in tree")
	// ErrUnsupportedFormat is returned by Dump for unknown output formats
	ErrUnsupportedFormat = errors.New("unsupported format")
)
