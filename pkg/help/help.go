/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package help

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/entry"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 80

var titler = cases.Title(language.English)

// Usage returns the one-line synopsis for a command level, e.g.
//
//	Usage: prog build [flags] [options] <src> [dst...]
func Usage(cmd *command.Command) string {
	parts := cmd.Chain()
	parts[0] = cmd.Binary()

	if len(cmd.Flags()) > 0 {
		parts = append(parts, "[flags]")
	}
	if len(cmd.Options()) > 0 {
		parts = append(parts, "[options]")
	}
	for _, a := range cmd.Arguments() {
		parts = append(parts, argNotation(a))
	}
	if cmd.HasSubcommands() {
		parts = append(parts, "<command>")
	}
	return "Usage: " + strings.Join(parts, " ")
}

// Render writes the full help text for a command level: synopsis, entry
// tables, subcommands grouped by topic label, and program identity on the
// root. Output wraps to the terminal width when w is a TTY.
func Render(w io.Writer, cmd *command.Command) error {
	width := detectWidth(w)
	var b strings.Builder

	if cmd.Summary() != "" {
		b.WriteString(cmd.Summary())
		b.WriteString("\n\n")
	}
	b.WriteString(Usage(cmd))
	b.WriteString("\n")

	writeFlagSection(&b, cmd, width)
	writeOptionSection(&b, cmd, width)
	writeArgumentSection(&b, cmd, width)
	writeCommandSections(&b, cmd, width)

	if cmd.Parent() == nil {
		if v := cmd.Version(); v != "" {
			fmt.Fprintf(&b, "\nVersion: %s\n", v)
		}
		if authors := cmd.Authors(); len(authors) > 0 {
			fmt.Fprintf(&b, "Authors: %s\n", strings.Join(authors, ", "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeFlagSection(b *strings.Builder, cmd *command.Command, width int) {
	flags := cmd.Flags()
	if len(flags) == 0 {
		return
	}
	rows := make([]row, 0, len(flags))
	for _, f := range flags {
		desc := f.Description()
		if f.IsRepeating() {
			desc = appendNote(desc, "repeatable")
		}
		rows = append(rows, row{left: formColumn(f.ShortForm(), f.LongForm(), ""), desc: desc})
	}
	writeSection(b, "Flags:", rows, width)
}

func writeOptionSection(b *strings.Builder, cmd *command.Command, width int) {
	options := cmd.Options()
	if len(options) == 0 {
		return
	}
	rows := make([]row, 0, len(options))
	for _, o := range options {
		desc := o.Description()
		if o.IsRequired() {
			desc = appendNote(desc, "required")
		}
		if len(o.DefaultValues()) > 0 {
			desc = appendNote(desc, "default: "+strings.Join(o.DefaultValues(), ", "))
		}
		if o.IsRepeating() {
			desc = appendNote(desc, "repeatable")
		}
		rows = append(rows, row{left: formColumn(o.ShortForm(), o.LongForm(), o.Tag()), desc: desc})
	}
	writeSection(b, "Options:", rows, width)
}

func writeArgumentSection(b *strings.Builder, cmd *command.Command, width int) {
	args := cmd.Arguments()
	if len(args) == 0 {
		return
	}
	rows := make([]row, 0, len(args))
	for _, a := range args {
		desc := a.Description()
		if len(a.DefaultValues()) > 0 {
			desc = appendNote(desc, "default: "+strings.Join(a.DefaultValues(), ", "))
		}
		rows = append(rows, row{left: argNotation(a), desc: desc})
	}
	writeSection(b, "Arguments:", rows, width)
}

// writeCommandSections lists subcommands, the ungrouped ones first, then
// one section per topic label in first-appearance order.
func writeCommandSections(b *strings.Builder, cmd *command.Command, width int) {
	var groups []string
	byGroup := make(map[string][]row)
	for _, sub := range cmd.Subcommands() {
		label := sub.TopicGroup()
		if _, ok := byGroup[label]; !ok {
			groups = append(groups, label)
		}
		desc := sub.Summary()
		if cmd.DefaultSubcommand() == sub {
			desc = appendNote(desc, "default")
		}
		byGroup[label] = append(byGroup[label], row{left: sub.Name(), desc: desc})
	}

	// Ungrouped commands come first.
	if rows, ok := byGroup[""]; ok {
		writeSection(b, "Commands:", rows, width)
	}
	for _, label := range groups {
		if label == "" {
			continue
		}
		writeSection(b, titler.String(label)+" Commands:", byGroup[label], width)
	}
}

type row struct {
	left string
	desc string
}

// writeSection prints a header and aligned two-column rows, wrapping the
// description column to the available width.
func writeSection(b *strings.Builder, header string, rows []row, width int) {
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")

	leftWidth := 0
	for _, r := range rows {
		if len(r.left) > leftWidth {
			leftWidth = len(r.left)
		}
	}

	for _, r := range rows {
		if r.desc == "" {
			fmt.Fprintf(b, "  %s\n", r.left)
			continue
		}
		indent := leftWidth + 4
		lines := wrap(r.desc, max(width-indent, 20))
		fmt.Fprintf(b, "  %-*s  %s\n", leftWidth, r.left, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", strings.Repeat(" ", indent), line)
		}
	}
}

// formColumn renders "-s, --long <tag>", aligning long-only entries past
// the short column.
func formColumn(short, long, tag string) string {
	var s string
	switch {
	case short != "" && long != "":
		s = fmt.Sprintf("-%s, --%s", short, long)
	case short != "":
		s = "-" + short
	default:
		s = "    --" + long
	}
	if tag != "" {
		s += " <" + tag + ">"
	}
	return s
}

func argNotation(a *entry.Argument) string {
	s := "<" + a.Tag() + ">"
	if !a.IsRequired() {
		s = "[" + a.Tag() + "]"
	}
	if a.IsRepeating() {
		s += "..."
	}
	return s
}

func appendNote(desc, note string) string {
	if desc == "" {
		return "(" + note + ")"
	}
	return desc + " (" + note + ")"
}

// wrap greedily breaks text into lines no longer than width.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

func detectWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
