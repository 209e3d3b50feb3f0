// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"slices"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
)

// Serialization formats accepted by encode and decode.
const (
	formatCBOR = "cbor"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatCBOR, formatJSON, formatYAML}

func checkFormat(format string) error {
	if !slices.Contains(formats, format) {
		return cli.Validation("--format: unknown format %q (want cbor, json, or yaml)", format)
	}
	return nil
}

func formatUsage() string {
	return fmt.Sprintf("serialization format: %s, %s, or %s", formatCBOR, formatJSON, formatYAML)
}
