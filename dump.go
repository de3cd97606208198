package holder

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported Dump formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Dump writes a rendering of the tree to w for inspection.
// format is one of FormatTOML, FormatYAML or FormatJSON.
func (n *Node) Dump(w io.Writer, format string) error {
	nested, err := n.Map()
	if err != nil {
		return err
	}

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(nested); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(nested); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(nested); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}
