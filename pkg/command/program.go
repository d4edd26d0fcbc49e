/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package command

import "github.com/NVIDIA/clix/pkg/entry"

// Reserved entry names auto-registered on every program root. They take
// part in all uniqueness checks, so embedders cannot redeclare them there.
const (
	HelpFlagName    = "help"
	VersionFlagName = "version"
)

// ProgramOption is a functional option for configuring the program root.
type ProgramOption func(*Command)

// WithVersion returns an option that sets the program version string.
func WithVersion(version string) ProgramOption {
	return func(c *Command) {
		c.version = version
	}
}

// WithSummary returns an option that sets the program's one-line summary.
func WithSummary(summary string) ProgramOption {
	return func(c *Command) {
		c.summary = summary
	}
}

// WithAuthors returns an option that sets the program authors shown in
// help output.
func WithAuthors(authors ...string) ProgramOption {
	return func(c *Command) {
		c.authors = authors
	}
}

// WithBinaryName returns an option that overrides the binary name used in
// usage lines. It defaults to the program name.
func WithBinaryName(binary string) ProgramOption {
	return func(c *Command) {
		c.binary = binary
	}
}

// NewProgram creates the root command of a model. It auto-registers the
// reserved "help" flag (short form h, long form help) and the long-only
// "version" flag.
func NewProgram(name string, opts ...ProgramOption) *Command {
	c := New(name, "")
	for _, opt := range opts {
		opt(c)
	}

	// A fresh command cannot collide with the reserved entries.
	_ = c.AddFlag(entry.NewFlag(HelpFlagName).Short("h").Long("help").
		Describe("show help and exit"))
	_ = c.AddFlag(entry.NewFlag(VersionFlagName).Long("version").
		Describe("show version and exit"))

	return c
}

// Version returns the program version declared on the root.
func (c *Command) Version() string { return c.Root().version }

// Authors returns the program authors declared on the root.
func (c *Command) Authors() []string { return c.Root().authors }

// Binary returns the binary name used in usage lines, defaulting to the
// root command name.
func (c *Command) Binary() string {
	root := c.Root()
	if root.binary != "" {
		return root.binary
	}
	return root.name
}
