// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/bytesstr/cmd/bytesstr/cli"
)

// reportStyle colors per-file status words when the report goes to a
// terminal. The zero value renders plain text.
type reportStyle struct {
	color   bool
	success lipgloss.Style
	failure lipgloss.Style
}

// newReportStyle returns a colored style if w is a terminal and a
// plain one otherwise.
func newReportStyle(w io.Writer) reportStyle {
	if !cli.IsTerminal(w) {
		return reportStyle{}
	}
	renderer := lipgloss.NewRenderer(w)
	return reportStyle{
		color:   true,
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (style reportStyle) ok(text string) string {
	if !style.color {
		return text
	}
	return style.success.Render(text)
}

func (style reportStyle) bad(text string) string {
	if !style.color {
		return text
	}
	return style.failure.Render(text)
}
