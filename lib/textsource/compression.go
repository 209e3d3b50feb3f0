// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"bytes"
	"fmt"
)

// Compression identifies how an input is compressed.
type Compression uint8

const (
	// CompressionAuto selects the format from the input's magic
	// number, falling back to CompressionNone.
	CompressionAuto Compression = iota

	// CompressionNone reads the input as-is.
	CompressionNone

	// CompressionZstd reads a zstd frame stream.
	CompressionZstd

	// CompressionLZ4 reads an LZ4 frame stream (the format written by
	// the lz4 command-line tool, not raw LZ4 blocks).
	CompressionLZ4

	// CompressionGzip reads a gzip stream.
	CompressionGzip
)

// Magic numbers at the start of each compressed format.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	gzipMagic = []byte{0x1F, 0x8B}
)

// String returns the name accepted by ParseCompression.
func (compression Compression) String() string {
	switch compression {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("unknown(%d)", compression)
	}
}

// ParseCompression parses a compression name as produced by String.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "auto", "":
		return CompressionAuto, nil
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want auto, none, zstd, lz4, or gzip)", name)
	}
}

// DetectCompression identifies the compression format of data from its
// leading magic number. Returns CompressionNone when no known magic
// number is present. The zstd and gzip magic numbers are never valid
// UTF-8; the LZ4 magic number 04 22 4D 18 is valid ASCII (the
// characters "M between two control bytes), so a text file that happens
// to begin with it must be read with CompressionNone.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}
