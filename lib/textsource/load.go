// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
)

// DefaultLimit is the size limit used when a caller passes a
// non-positive limit: 256 MiB.
const DefaultLimit = 256 << 20

// ErrTooLarge is returned when an input, raw or decompressed, exceeds
// the size limit.
var ErrTooLarge = errors.New("textsource: input exceeds size limit")

// StdinPath is the path that Load treats as standard input.
const StdinPath = "-"

// Load reads the file at path (or stdin if path is "-") and returns its
// decompressed contents as a shared buffer. See Read for the meaning of
// compression and limit.
func Load(path string, compression Compression, limit int64) (sharedbuf.Bytes, error) {
	if path == StdinPath {
		buffer, err := Read(os.Stdin, compression, limit)
		if err != nil {
			return sharedbuf.Bytes{}, fmt.Errorf("reading stdin: %w", err)
		}
		return buffer, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return sharedbuf.Bytes{}, err
	}
	defer file.Close()

	buffer, err := Read(file, compression, limit)
	if err != nil {
		return sharedbuf.Bytes{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return buffer, nil
}

// Read consumes r and returns its decompressed contents as a shared
// buffer. With CompressionAuto the format is detected from the magic
// number. limit bounds both the raw and the decompressed size; a
// non-positive limit means DefaultLimit. Exceeding it returns an error
// matching ErrTooLarge.
func Read(r io.Reader, compression Compression, limit int64) (sharedbuf.Bytes, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	raw, err := readLimited(r, limit)
	if err != nil {
		return sharedbuf.Bytes{}, err
	}

	if compression == CompressionAuto {
		compression = DetectCompression(raw)
	}

	var data []byte
	switch compression {
	case CompressionNone:
		data = raw
	case CompressionZstd:
		data, err = decompressZstd(raw, limit)
	case CompressionLZ4:
		data, err = readLimited(lz4.NewReader(bytes.NewReader(raw)), limit)
		if err != nil {
			err = fmt.Errorf("lz4 decompress: %w", err)
		}
	case CompressionGzip:
		data, err = decompressGzip(raw, limit)
	default:
		return sharedbuf.Bytes{}, fmt.Errorf("unsupported compression: %s", compression)
	}
	if err != nil {
		return sharedbuf.Bytes{}, err
	}

	// data is owned here and never touched again.
	return sharedbuf.Wrap(data), nil
}

func decompressZstd(compressed []byte, limit int64) ([]byte, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(compressed),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(uint64(limit)+1),
	)
	if err != nil {
		return nil, zstdError(err, limit)
	}
	defer decoder.Close()

	data, err := readLimited(decoder, limit)
	if err != nil {
		return nil, zstdError(err, limit)
	}
	return data, nil
}

// zstdError wraps a zstd failure. A frame whose declared content or
// window size exceeds the decoder's memory bound is reported as
// ErrTooLarge.
func zstdError(err error, limit int64) error {
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return fmt.Errorf("%w (%d bytes): %v", ErrTooLarge, limit, err)
	}
	return fmt.Errorf("zstd decompress: %w", err)
}

func decompressGzip(compressed []byte, limit int64) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	defer reader.Close()

	data, err := readLimited(reader, limit)
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	return data, nil
}

// readLimited reads r to EOF, failing with ErrTooLarge if it yields more
// than limit bytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	return data, nil
}
