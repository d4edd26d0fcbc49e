/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package command

import (
	"github.com/NVIDIA/clix/pkg/entry"
)

// Command is a named node in the subcommand tree. The root node is built
// with NewProgram and additionally carries program identity (version,
// authors, binary name).
//
// A command validates its full structural consistency on every Add call
// and is read-only once parsing starts.
type Command struct {
	name    string
	summary string

	// Program identity, populated on the root only.
	version string
	authors []string
	binary  string

	// topic is this command's own help-grouping label, stamped by the
	// parent at add time. currentTopic is the label applied to subcommands
	// added from now on.
	topic        string
	currentTopic string

	flags   []*entry.Flag
	options []*entry.Option
	args    []*entry.Argument

	// names tracks entry-name uniqueness across flags, options and
	// arguments.
	names map[string]bool

	subs       map[string]*Command
	subOrder   []string
	defaultSub string

	// parent is a weak back-reference; ownership never flows upward.
	parent *Command
}

// New creates a subcommand node with the given name and one-line summary.
func New(name, summary string) *Command {
	return &Command{
		name:    name,
		summary: summary,
		names:   make(map[string]bool),
		subs:    make(map[string]*Command),
	}
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Summary returns the one-line description shown in help listings.
func (c *Command) Summary() string { return c.summary }

// Parent returns the enclosing command, or nil at the root.
func (c *Command) Parent() *Command { return c.parent }

// Root walks the parent chain to the program node.
func (c *Command) Root() *Command {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// Chain returns the command names from the root down to this command,
// in order. Used for usage synopsis lines.
func (c *Command) Chain() []string {
	var chain []string
	for cur := c; cur != nil; cur = cur.parent {
		chain = append([]string{cur.name}, chain...)
	}
	return chain
}

// Flags returns the declared flags in insertion order.
func (c *Command) Flags() []*entry.Flag { return c.flags }

// Options returns the declared options in insertion order.
func (c *Command) Options() []*entry.Option { return c.options }

// Arguments returns the declared positional arguments in insertion order.
func (c *Command) Arguments() []*entry.Argument { return c.args }

// Subcommand returns the named subcommand, or nil.
func (c *Command) Subcommand(name string) *Command { return c.subs[name] }

// Subcommands returns the subcommands in insertion order.
func (c *Command) Subcommands() []*Command {
	out := make([]*Command, 0, len(c.subOrder))
	for _, name := range c.subOrder {
		out = append(out, c.subs[name])
	}
	return out
}

// SubcommandNames returns the subcommand names in insertion order.
func (c *Command) SubcommandNames() []string {
	return append([]string(nil), c.subOrder...)
}

// HasSubcommands reports whether any subcommand is declared.
func (c *Command) HasSubcommands() bool { return len(c.subOrder) > 0 }

// DefaultCommand selects the subcommand the parser dispatches to when the
// token stream names none. The subcommand must already be declared.
func (c *Command) DefaultCommand(name string) error {
	if _, ok := c.subs[name]; !ok {
		return modelErrf(ErrCodeUnknownDefault, c.name,
			"default command %q is not a subcommand of %q", name, c.name)
	}
	c.defaultSub = name
	return nil
}

// DefaultSubcommand returns the configured default subcommand, or nil.
func (c *Command) DefaultSubcommand() *Command {
	if c.defaultSub == "" {
		return nil
	}
	return c.subs[c.defaultSub]
}

// Topic sets the help-grouping label applied to subcommands added from now
// on. The label has no effect on parsing.
func (c *Command) Topic(label string) *Command {
	c.currentTopic = label
	return c
}

// TopicGroup returns the help-grouping label this command was added under.
func (c *Command) TopicGroup() string { return c.topic }
