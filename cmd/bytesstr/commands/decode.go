// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
	"github.com/bureau-foundation/bytesstr/lib/bytesstr"
	"github.com/bureau-foundation/bytesstr/lib/codec"
	"github.com/bureau-foundation/bytesstr/lib/sharedbuf"
)

func decodeCommand() *cli.Command {
	var options inputOptions
	var format string

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a single string value and print its text",
		Description: `Read FILE holding one string value in the chosen format and write the
string's text to stdout. This is the inverse of "bytesstr encode".

CBOR input is decoded without copying: the printed text is a view of
the loaded file. The input must be exactly one definite-length text
string; trailing bytes are an error. JSON input may carry // and /* */
comments and trailing commas.`,
		Usage: "bytesstr decode [flags] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := newFlagSet("decode")
			options.register(flagSet)
			flagSet.StringVar(&format, "format", formatCBOR, formatUsage())
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Round-trip a file through CBOR",
				Command:     "bytesstr encode notes.txt | bytesstr decode -",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := requireArgs("decode", args, 1, 1); err != nil {
				return err
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			buffer, err := options.load(args[0], logger)
			if err != nil {
				return err
			}
			text, err := decodeText(buffer, format, logger)
			if err != nil {
				return err
			}
			if _, err := text.Buffer().WriteTo(os.Stdout); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}

// decodeText decodes the single string value held in buffer.
func decodeText(buffer sharedbuf.Bytes, format string, logger *slog.Logger) (bytesstr.String, error) {
	var text bytesstr.String
	switch format {
	case formatCBOR:
		decoded, rest, err := codec.DecodeString(buffer)
		if err != nil {
			if notation, _, diagErr := codec.DiagnoseFirst(buffer.Bytes()); diagErr == nil {
				logger.Debug("rejected CBOR item", "diagnostic", notation)
			}
			return bytesstr.String{}, cli.Validation("decode cbor: %w", err)
		}
		if !rest.IsEmpty() {
			return bytesstr.String{}, cli.Validation("decode cbor: %d trailing bytes after the text string", rest.Len())
		}
		logger.Debug("decoded CBOR text string",
			"bytes", decoded.Len(),
			"shared", decoded.Buffer().SameAllocation(buffer),
		)
		text = decoded
	case formatJSON:
		// JSONC: comments and trailing commas are stripped first.
		if err := json.Unmarshal(jsonc.ToJSON(buffer.Bytes()), &text); err != nil {
			return bytesstr.String{}, cli.Validation("decode json: %w", err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(buffer.Bytes(), &text); err != nil {
			return bytesstr.String{}, cli.Validation("decode yaml: %w", err)
		}
	default:
		return bytesstr.String{}, checkFormat(format)
	}
	return text, nil
}
