// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/lib/version"
)

// Root builds and returns the complete bytesstr command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "bytesstr",
		Description: `bytesstr: validate and inspect UTF-8 text without copying it.

Each input is loaded into one shared buffer, validated once, and then
handled through zero-copy string views of that buffer. Compressed
inputs (zstd, LZ4 frame, gzip) are detected and decompressed.`,
		Subcommands: []*cli.Command{
			checkCommand(),
			digestCommand(),
			linesCommand(),
			encodeCommand(),
			decodeCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Fprintf(os.Stdout, "bytesstr %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
