// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/lib/bytesstr"
)

func linesCommand() *cli.Command {
	var options inputOptions
	var unique bool

	return &cli.Command{
		Name:    "lines",
		Summary: "Count the lines of a UTF-8 file",
		Description: `Split FILE into lines and print a summary:

  path: N lines, B bytes, longest L bytes

Lines end at "\n"; a trailing "\r" is not part of the line. With
--unique, also print each distinct line with its number of occurrences,
most frequent first, in the style of "sort | uniq -c | sort -rn".

Every line is a view into the loaded file, so memory use stays at one
copy of the input no matter how many lines it has.`,
		Usage: "bytesstr lines [flags] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("lines")
			options.register(flagSet)
			flagSet.BoolVar(&unique, "unique", false, "print each distinct line with its count")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Most frequent lines of a compressed log",
				Command:     "bytesstr lines --unique access.log.gz | head",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := requireArgs("lines", args, 1, 1); err != nil {
				return err
			}
			text, err := options.loadText(args[0], logger)
			if err != nil {
				return err
			}
			return writeLineReport(args[0], text, unique, os.Stdout)
		},
	}
}

// splitLines returns the lines of text as views sharing its
// allocation. A final line without a terminator is included; an empty
// text has no lines.
func splitLines(text bytesstr.String) []bytesstr.String {
	var lines []bytesstr.String
	remaining := text.String()
	for len(remaining) > 0 {
		line := remaining
		next := ""
		if index := strings.IndexByte(remaining, '\n'); index >= 0 {
			line = remaining[:index]
			next = remaining[index+1:]
		}
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, text.SliceRef(line))
		remaining = next
	}
	return lines
}

// lineCount is one row of the --unique report.
type lineCount struct {
	line  bytesstr.String
	count int
}

// countUnique tallies the distinct lines. The map is keyed by the
// zero-copy text of each view, so no line is copied. The result is
// ordered by descending count, then by line.
func countUnique(lines []bytesstr.String) []lineCount {
	index := make(map[string]int, len(lines))
	var counts []lineCount
	for _, line := range lines {
		if position, ok := index[line.String()]; ok {
			counts[position].count++
			continue
		}
		index[line.String()] = len(counts)
		counts = append(counts, lineCount{line: line, count: 1})
	}

	slices.SortFunc(counts, func(a, b lineCount) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return bytesstr.Compare(a.line, b.line)
	})
	return counts
}

func writeLineReport(path string, text bytesstr.String, unique bool, w io.Writer) error {
	lines := splitLines(text)

	longest := 0
	for _, line := range lines {
		longest = max(longest, line.Len())
	}
	if _, err := fmt.Fprintf(w, "%s: %d lines, %d bytes, longest %d bytes\n", path, len(lines), text.Len(), longest); err != nil {
		return cli.Internal("writing output: %w", err)
	}

	if !unique {
		return nil
	}
	for _, entry := range countUnique(lines) {
		if _, err := fmt.Fprintf(w, "%7d %s\n", entry.count, entry.line); err != nil {
			return cli.Internal("writing output: %w", err)
		}
	}
	return nil
}
