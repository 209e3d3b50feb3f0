// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command bytesstr validates, hashes, and converts UTF-8 text files
// using zero-copy shared string views.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own report (like check) return an
		// ExitError with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var toolError *cli.ToolError
		if errors.As(err, &toolError) && toolError.Category == cli.CategoryValidation {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:])
}
