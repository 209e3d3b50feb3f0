// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
)

func digestCommand() *cli.Command {
	var options inputOptions

	return &cli.Command{
		Name:    "digest",
		Summary: "Print the content digest of UTF-8 files",
		Description: `Print the blake3 content digest of each FILE, in the same format as
sha256sum: the hex digest, two spaces, and the path.

The digest covers the decompressed text, so a file and its zstd or gzip
compressed copy have the same digest. Inputs that are not valid UTF-8
are rejected; the digest is defined only for text.`,
		Usage: "bytesstr digest [flags] FILE...",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("digest")
			options.register(flagSet)
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Confirm that a compressed archive holds the same text",
				Command:     "bytesstr digest notes.txt notes.txt.zst",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := requireArgs("digest", args, 1, -1); err != nil {
				return err
			}
			return digestFiles(ctx, args, &options, os.Stdout, logger)
		},
	}
}

// digestFiles writes "<digest>  <path>" for each path to w, stopping
// at the first input that cannot be loaded or is not valid UTF-8.
func digestFiles(ctx context.Context, paths []string, options *inputOptions, w io.Writer, logger *slog.Logger) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := options.loadText(path, logger)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", text.Sum256(), path); err != nil {
			return cli.Internal("writing output: %w", err)
		}
	}
	return nil
}
