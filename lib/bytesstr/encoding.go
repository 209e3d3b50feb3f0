// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler for JSON, CBOR (through
// lib/codec), and other text-based serialization formats. The result
// is a copy; encoders are free to modify it.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// validated and copied into a fresh allocation, since decoders reuse
// their buffers. An empty input produces the empty String.
func (s *String) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*s = String{}
		return nil
	}
	parsed, err := FromText(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. A String is always emitted as
// a plain string scalar.
func (s String) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are
// accepted; a null scalar produces the empty String.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("bytesstr: cannot decode YAML %s node into a string (line %d)", yamlKindName(node.Kind), node.Line)
	}
	var text string
	if err := node.Decode(&text); err != nil {
		return fmt.Errorf("bytesstr: decoding YAML scalar: %w", err)
	}
	return s.UnmarshalText([]byte(text))
}

func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", kind)
	}
}
