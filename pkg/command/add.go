/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package command

import (
	"strings"

	"github.com/NVIDIA/clix/pkg/entry"
)

// AddFlag declares a flag on the command. The whole command is re-validated
// eagerly; a structural violation is returned immediately and the flag is
// not added.
func (c *Command) AddFlag(f *entry.Flag) error {
	if err := c.checkName(f.Name()); err != nil {
		return err
	}
	if err := c.checkForms(f.ShortForm(), f.LongForm()); err != nil {
		return err
	}

	c.names[f.Name()] = true
	c.flags = append(c.flags, f)
	return nil
}

// AddOption declares a value-taking option on the command.
func (c *Command) AddOption(o *entry.Option) error {
	if err := c.checkName(o.Name()); err != nil {
		return err
	}
	if err := c.checkForms(o.ShortForm(), o.LongForm()); err != nil {
		return err
	}
	if o.IsRequired() && len(o.DefaultValues()) > 0 {
		return modelErrf(ErrCodeRequiredWithDefault, c.name,
			"option %q cannot be required and carry a default value", o.Name())
	}

	c.names[o.Name()] = true
	c.options = append(c.options, o)
	return nil
}

// AddArgument declares a positional argument on the command. Ordering rules
// apply: a required argument cannot follow an optional one, nothing can
// follow a repeating one, and an optional or repeating argument cannot
// coexist with subcommands.
func (c *Command) AddArgument(a *entry.Argument) error {
	if err := c.checkName(a.Name()); err != nil {
		return err
	}
	if a.IsRequired() && len(a.DefaultValues()) > 0 {
		return modelErrf(ErrCodeRequiredWithDefault, c.name,
			"argument %q cannot be required and carry a default value", a.Name())
	}
	if n := len(c.args); n > 0 {
		last := c.args[n-1]
		if last.IsRepeating() {
			return modelErrf(ErrCodeArgumentOrder, c.name,
				"argument %q cannot follow repeating argument %q", a.Name(), last.Name())
		}
		if a.IsRequired() && c.hasOptionalArg() {
			return modelErrf(ErrCodeArgumentOrder, c.name,
				"required argument %q cannot follow an optional argument", a.Name())
		}
	}
	if (!a.IsRequired() || a.IsRepeating()) && c.HasSubcommands() {
		return modelErrf(ErrCodeSubcommandConflict, c.name,
			"argument %q would compete with subcommands for the next token; only required, non-repeating arguments may coexist with subcommands", a.Name())
	}

	c.names[a.Name()] = true
	c.args = append(c.args, a)
	return nil
}

// AddCommand declares a subcommand. The child's parent pointer is stamped
// and the current topic label is propagated to it.
func (c *Command) AddCommand(sub *Command) error {
	if err := validName(sub.Name()); err != nil {
		return modelErrf(ErrCodeInvalidName, c.name,
			"subcommand name %q is invalid: %s", sub.Name(), err)
	}
	if _, ok := c.subs[sub.Name()]; ok {
		return modelErrf(ErrCodeDuplicateName, c.name,
			"subcommand %q is already declared on %q", sub.Name(), c.name)
	}
	if n := len(c.args); n > 0 {
		last := c.args[n-1]
		if !last.IsRequired() || last.IsRepeating() {
			return modelErrf(ErrCodeSubcommandConflict, c.name,
				"subcommand %q would compete with trailing argument %q for the next token", sub.Name(), last.Name())
		}
	}

	sub.parent = c
	sub.topic = c.currentTopic
	c.subs[sub.Name()] = sub
	c.subOrder = append(c.subOrder, sub.Name())
	return nil
}

func (c *Command) checkName(name string) error {
	if err := validName(name); err != nil {
		return modelErrf(ErrCodeInvalidName, c.name, "entry name %q is invalid: %s", name, err)
	}
	if c.names[name] {
		return modelErrf(ErrCodeDuplicateName, c.name,
			"entry %q is already declared on %q", name, c.name)
	}
	return nil
}

func (c *Command) checkForms(short, long string) error {
	if short == "" && long == "" {
		return modelErrf(ErrCodeMissingForm, c.name,
			"flags and options need a short or a long form")
	}
	for _, form := range []string{short, long} {
		if form == "" {
			continue
		}
		if strings.HasPrefix(form, "-") || strings.ContainsAny(form, "= ") {
			return modelErrf(ErrCodeInvalidForm, c.name,
				"form %q is invalid: forms are declared without dashes and cannot contain %q or spaces", form, "=")
		}
	}
	if short != "" && c.formTaken(short, true) {
		return modelErrf(ErrCodeDuplicateForm, c.name,
			"short form %q is already taken on %q", short, c.name)
	}
	if long != "" && c.formTaken(long, false) {
		return modelErrf(ErrCodeDuplicateForm, c.name,
			"long form %q is already taken on %q", long, c.name)
	}
	return nil
}

// formTaken reports whether any flag or option of this command already
// claims the form.
func (c *Command) formTaken(form string, short bool) bool {
	for _, f := range c.flags {
		if short && f.ShortForm() == form || !short && f.LongForm() == form {
			return true
		}
	}
	for _, o := range c.options {
		if short && o.ShortForm() == form || !short && o.LongForm() == form {
			return true
		}
	}
	return false
}

func (c *Command) hasOptionalArg() bool {
	for _, a := range c.args {
		if !a.IsRequired() {
			return true
		}
	}
	return false
}

type nameError string

func (e nameError) Error() string { return string(e) }

// validName enforces the entry and subcommand naming rules: non-empty,
// alphanumeric plus underscore and dash, no leading dash.
func validName(name string) error {
	if name == "" {
		return nameError("name is empty")
	}
	if strings.HasPrefix(name, "-") {
		return nameError("name cannot start with a dash")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return nameError("only alphanumerics, underscores and dashes are allowed")
		}
	}
	return nil
}
