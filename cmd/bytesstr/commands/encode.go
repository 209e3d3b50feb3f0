// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/lib/bytesstr"
	"github.com/bureau-foundation/bytesstr/lib/codec"
)

func encodeCommand() *cli.Command {
	var options inputOptions
	var format string
	var force bool

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a UTF-8 file as a single string value",
		Description: `Read FILE, validate it as UTF-8, and write its text as one string
value in the chosen format:

  cbor  a CBOR text string (major type 3), Core Deterministic Encoding
  json  a JSON string followed by a newline
  yaml  a YAML scalar document

CBOR output is binary; it is refused when stdout is a terminal unless
--force is given.`,
		Usage: "bytesstr encode [flags] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("encode")
			options.register(flagSet)
			flagSet.StringVar(&format, "format", formatCBOR, formatUsage())
			flagSet.BoolVar(&force, "force", false, "write binary CBOR even when stdout is a terminal")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Wrap a text file as a CBOR string",
				Command:     "bytesstr encode notes.txt > notes.cbor",
			},
			{
				Description: "Quote a file for embedding in JSON",
				Command:     "bytesstr encode --format json message.txt",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := requireArgs("encode", args, 1, 1); err != nil {
				return err
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			if format == formatCBOR && !force && cli.IsTerminal(os.Stdout) {
				return cli.Validation("refusing to write binary CBOR to a terminal (redirect stdout or pass --force)")
			}
			text, err := options.loadText(args[0], logger)
			if err != nil {
				return err
			}
			return encodeText(text, format, os.Stdout)
		},
	}
}

// encodeText writes text to w as a single string value in format.
func encodeText(text bytesstr.String, format string, w io.Writer) error {
	var data []byte
	var err error
	switch format {
	case formatCBOR:
		data, err = codec.Marshal(text)
	case formatJSON:
		data, err = json.Marshal(text)
		if err == nil {
			data = append(data, '\n')
		}
	case formatYAML:
		data, err = yaml.Marshal(text)
	default:
		return checkFormat(format)
	}
	if err != nil {
		return cli.Internal("encode %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}
