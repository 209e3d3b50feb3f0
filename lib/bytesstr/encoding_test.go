// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytesstr

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type labeled struct {
	Name  String `json:"name" yaml:"name"`
	Notes String `json:"notes,omitzero" yaml:"notes,omitempty"`
}

func TestJSONRoundTrip(t *testing.T) {
	original := labeled{Name: FromStatic("café \"quoted\" 🎉")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"café \"quoted\" 🎉"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded labeled
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Name.Equal(original.Name) {
		t.Errorf("Name = %q, want %q", decoded.Name, original.Name)
	}
	if !decoded.Notes.IsEmpty() {
		t.Errorf("Notes = %q, want empty", decoded.Notes)
	}
}

func TestJSONDecodeDoesNotAliasInput(t *testing.T) {
	data := []byte(`"shared"`)
	var decoded String
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	copy(data, `"XXXXXX"`)
	if !decoded.EqualString("shared") {
		t.Errorf("decoded value changed with its input: %q", decoded)
	}
}

func TestUnmarshalTextRejectsInvalid(t *testing.T) {
	var value String
	err := value.UnmarshalText([]byte("bad\xff"))
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("UnmarshalText error = %v, want ErrInvalidEncoding", err)
	}
	if !value.IsEmpty() {
		t.Errorf("value modified on error: %q", value)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	original := labeled{Name: FromString("multi\nline: text")}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded labeled
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal(%s): %v", data, err)
	}
	if !decoded.Name.Equal(original.Name) {
		t.Errorf("Name = %q, want %q", decoded.Name, original.Name)
	}
}

func TestYAMLDecodeScalars(t *testing.T) {
	tests := []struct {
		document string
		want     string
	}{
		{"name: plain", "plain"},
		{"name: 'single quoted'", "single quoted"},
		{"name: \"\\u00e9t\\u00e9\"", "été"},
		{"name: ~", ""},
	}
	for _, test := range tests {
		var decoded labeled
		if err := yaml.Unmarshal([]byte(test.document), &decoded); err != nil {
			t.Errorf("Unmarshal(%q): %v", test.document, err)
			continue
		}
		if !decoded.Name.EqualString(test.want) {
			t.Errorf("Unmarshal(%q).Name = %q, want %q", test.document, decoded.Name, test.want)
		}
	}
}

func TestYAMLRejectsNonScalar(t *testing.T) {
	for _, document := range []string{"name: [a, b]", "name: {key: value}"} {
		var decoded labeled
		err := yaml.Unmarshal([]byte(document), &decoded)
		if err == nil {
			t.Errorf("Unmarshal(%q) succeeded, want error", document)
			continue
		}
		if !strings.Contains(err.Error(), "cannot decode YAML") {
			t.Errorf("Unmarshal(%q) error = %v", document, err)
		}
	}
}
