// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/lib/bytesstr"
)

func checkCommand() *cli.Command {
	var options inputOptions

	return &cli.Command{
		Name:    "check",
		Summary: "Validate that files are UTF-8",
		Description: `Validate each FILE as UTF-8 and print one line per file:

  path: ok (N bytes, M runes)
  path: invalid UTF-8 at byte offset X

The offset is the position of the first invalid sequence in the
decompressed input. Exits 1 if any input is invalid or unreadable.`,
		Usage: "bytesstr check [flags] FILE...",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("check")
			options.register(flagSet)
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Validate every log file, compressed or not",
				Command:     "bytesstr check logs/*.log logs/*.log.zst",
			},
			{
				Description: "Validate stdin",
				Command:     "curl -s https://example.com/feed | bytesstr check -",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := requireArgs("check", args, 1, -1); err != nil {
				return err
			}
			failed, err := checkFiles(ctx, args, &options, os.Stdout, logger)
			if err != nil {
				return err
			}
			if failed > 0 {
				logger.Debug("validation failed", "failed", failed, "total", len(args))
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// checkFiles validates each path and writes one result line per path
// to w. Returns the number of paths that failed. Unreadable and
// oversized inputs count as failures; only a bad flag or a cancelled
// context stops the run early.
func checkFiles(ctx context.Context, paths []string, options *inputOptions, w io.Writer, logger *slog.Logger) (int, error) {
	if err := options.validate(); err != nil {
		return 0, err
	}

	style := newReportStyle(w)
	failed := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		buffer, err := options.load(path, logger)
		if err != nil {
			if _, writeErr := fmt.Fprintf(w, "%s: %s %v\n", path, style.bad("error:"), err); writeErr != nil {
				return failed, cli.Internal("writing output: %w", writeErr)
			}
			failed++
			continue
		}

		text, err := bytesstr.FromUTF8Bytes(buffer)
		if err != nil {
			if _, writeErr := fmt.Fprintf(w, "%s: %s\n", path, style.bad(describeInvalid(err))); writeErr != nil {
				return failed, cli.Internal("writing output: %w", writeErr)
			}
			failed++
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s (%d bytes, %d runes)\n", path, style.ok("ok"), text.Len(), utf8.RuneCountInString(text.String())); err != nil {
			return failed, cli.Internal("writing output: %w", err)
		}
	}
	return failed, nil
}
