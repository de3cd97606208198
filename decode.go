package holder

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DecodeTagName is the struct tag Scan reads field names from.
const DecodeTagName = "toml"

// Scan decodes the tree under n into target, which must be a non-nil pointer
// to a struct or map. Field names come from the "toml" struct tag. Values are
// not coerced between kinds: a string leaf will not fill an int field.
func (n *Node) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	nested, err := n.Map()
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          DecodeTagName,
		WeaklyTypedInput: false,
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan into %T: %w", target, err)
	}
	return nil
}
