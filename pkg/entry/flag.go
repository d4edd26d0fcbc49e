/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package entry

// Flag is a boolean, presence-counted entry. Flags take no value, are never
// required, carry no defaults and no validators; the type deliberately
// exposes no setters for any of those.
type Flag struct {
	base

	shortForm string
	longForm  string
}

// NewFlag creates a flag with the given name. At least one of Short or Long
// must be set before the flag is added to a command.
func NewFlag(name string) *Flag {
	return &Flag{base: base{name: name}}
}

// Short sets the short form (matched after a single dash).
func (f *Flag) Short(form string) *Flag {
	f.shortForm = form
	return f
}

// Long sets the long form (matched after a double dash).
func (f *Flag) Long(form string) *Flag {
	f.longForm = form
	return f
}

// Describe sets the help description.
func (f *Flag) Describe(text string) *Flag {
	f.description = text
	return f
}

// Repeating marks the flag as countable beyond one occurrence, including
// the stacked short form (-vvv).
func (f *Flag) Repeating(repeating bool) *Flag {
	f.repeating = repeating
	return f
}

// ShortForm returns the short form, or "" when none is declared.
func (f *Flag) ShortForm() string { return f.shortForm }

// LongForm returns the long form, or "" when none is declared.
func (f *Flag) LongForm() string { return f.longForm }
