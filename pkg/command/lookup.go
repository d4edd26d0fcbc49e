/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package command

import "github.com/NVIDIA/clix/pkg/entry"

// The Resolve* lookups serve the parser. They search this command, the
// ancestor chain (so globally scoped entries like a root verbosity flag
// stay reachable below the level that declared them) and, when
// searchDefault is set, the default-subcommand chain (so entries declared
// only on a default subcommand are reachable from the parent's token
// stream).

// ResolveFlag finds a flag by exact form match.
func (c *Command) ResolveFlag(form string, short, searchDefault bool) *entry.Flag {
	for cur := c; cur != nil; cur = cur.parent {
		if f := cur.ownFlag(form, short); f != nil {
			return f
		}
		if searchDefault {
			for sub := cur.DefaultSubcommand(); sub != nil; sub = sub.DefaultSubcommand() {
				if f := sub.ownFlag(form, short); f != nil {
					return f
				}
			}
		}
	}
	return nil
}

// ResolveOption finds an option by exact form match.
func (c *Command) ResolveOption(form string, short, searchDefault bool) *entry.Option {
	for cur := c; cur != nil; cur = cur.parent {
		if o := cur.ownOption(form, short); o != nil {
			return o
		}
		if searchDefault {
			for sub := cur.DefaultSubcommand(); sub != nil; sub = sub.DefaultSubcommand() {
				if o := sub.ownOption(form, short); o != nil {
					return o
				}
			}
		}
	}
	return nil
}

// Forms returns every flag and option form of the given kind visible from
// this command (own, ancestor and default-subcommand entries). The parser
// uses it as the candidate set for "did you mean" suggestions.
func (c *Command) Forms(short bool) []string {
	var forms []string
	seen := make(map[string]bool)
	add := func(form string) {
		if form != "" && !seen[form] {
			seen[form] = true
			forms = append(forms, form)
		}
	}

	for cur := c; cur != nil; cur = cur.parent {
		cur.collectForms(short, add)
		for sub := cur.DefaultSubcommand(); sub != nil; sub = sub.DefaultSubcommand() {
			sub.collectForms(short, add)
		}
	}
	return forms
}

func (c *Command) collectForms(short bool, add func(string)) {
	for _, f := range c.flags {
		if short {
			add(f.ShortForm())
		} else {
			add(f.LongForm())
		}
	}
	for _, o := range c.options {
		if short {
			add(o.ShortForm())
		} else {
			add(o.LongForm())
		}
	}
}

func (c *Command) ownFlag(form string, short bool) *entry.Flag {
	if form == "" {
		return nil
	}
	for _, f := range c.flags {
		if short && f.ShortForm() == form || !short && f.LongForm() == form {
			return f
		}
	}
	return nil
}

func (c *Command) ownOption(form string, short bool) *entry.Option {
	if form == "" {
		return nil
	}
	for _, o := range c.options {
		if short && o.ShortForm() == form || !short && o.LongForm() == form {
			return o
		}
	}
	return nil
}
