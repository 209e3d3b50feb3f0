// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/lib/bytesstr"
	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
	"github.com/bureau-foundation/bytesstr/lib/textsource"
)

// inputOptions controls how command inputs are loaded. Shared by every
// command that reads files.
type inputOptions struct {
	compression string
	maxSize     int64
}

// register adds the --compression and --max-size flags to flagSet.
func (options *inputOptions) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&options.compression, "compression", "auto",
		"input compression: auto, none, zstd, lz4, or gzip")
	flagSet.Int64Var(&options.maxSize, "max-size", textsource.DefaultLimit,
		"maximum input size in bytes, before and after decompression")
}

// validate checks the flag values without touching any input.
func (options *inputOptions) validate() error {
	_, err := options.parseCompression()
	return err
}

func (options *inputOptions) parseCompression() (textsource.Compression, error) {
	compression, err := textsource.ParseCompression(options.compression)
	if err != nil {
		return 0, cli.Validation("--compression: %w", err)
	}
	return compression, nil
}

// load reads path ("-" for stdin) into a shared buffer.
func (options *inputOptions) load(path string, logger *slog.Logger) (sharedbuf.Bytes, error) {
	compression, err := options.parseCompression()
	if err != nil {
		return sharedbuf.Bytes{}, err
	}
	buffer, err := textsource.Load(path, compression, options.maxSize)
	if err != nil {
		if errors.Is(err, textsource.ErrTooLarge) {
			return sharedbuf.Bytes{}, cli.Validation("%w (raise --max-size to allow it)", err)
		}
		return sharedbuf.Bytes{}, cli.Internal("%w", err)
	}
	logger.Debug("loaded input", "path", path, "bytes", buffer.Len(), "compression", compression.String())
	return buffer, nil
}

// loadText loads path and validates it as UTF-8.
func (options *inputOptions) loadText(path string, logger *slog.Logger) (bytesstr.String, error) {
	buffer, err := options.load(path, logger)
	if err != nil {
		return bytesstr.String{}, err
	}
	text, err := bytesstr.FromUTF8Bytes(buffer)
	if err != nil {
		return bytesstr.String{}, cli.Validation("%s: %w", path, err)
	}
	return text, nil
}

// newFlagSet returns an empty flag set in the mode cli.Command expects.
func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet(name, pflag.ContinueOnError)
}

// requireArgs returns a validation error unless args has between
// minimum and maximum entries (maximum < 0 means unbounded).
func requireArgs(command string, args []string, minimum, maximum int) error {
	switch {
	case len(args) < minimum && minimum == 1 && maximum == 1:
		return cli.Validation("%s requires a FILE argument (use - for stdin)", command)
	case len(args) < minimum:
		return cli.Validation("%s requires at least %d FILE argument(s)", command, minimum)
	case maximum >= 0 && len(args) > maximum:
		return cli.Validation("%s takes at most %d FILE argument(s), got %d", command, maximum, len(args))
	}
	return nil
}

// describeInvalid renders an encoding failure the way check reports it.
func describeInvalid(err error) string {
	var invalid *bytesstr.InvalidEncodingError
	if errors.As(err, &invalid) {
		if invalid.Truncated {
			return fmt.Sprintf("invalid UTF-8 at byte offset %d (truncated sequence)", invalid.Offset)
		}
		return fmt.Sprintf("invalid UTF-8 at byte offset %d", invalid.Offset)
	}
	return err.Error()
}
