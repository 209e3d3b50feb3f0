// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the bytesstr
// binary.
//
// A [Command] is a node in a tree: group commands dispatch on their
// first positional argument, leaf commands parse their flags with
// spf13/pflag and call Run with a context and a logger scoped to the
// command. Mistyped command and flag names get a "did you mean"
// suggestion based on edit distance.
//
// Errors returned by Run fall into two groups. A [*ToolError] carries
// a category ([Validation] for bad input, [Internal] for unexpected
// failures) and is printed by main. An [*ExitError] means the command
// already reported its outcome and only the exit code remains.
package cli
