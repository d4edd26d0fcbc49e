/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package entry

// Validator checks the complete collected value sequence of an option or
// positional argument after parsing. Implementations must name the entry and
// the violated constraint in the returned error.
type Validator interface {
	Validate(name string, values []string) error
}

// base holds the attributes shared by all entry kinds. Cross-entry
// invariants (name uniqueness, ordering rules) are enforced by the owning
// command at add time, never here.
type base struct {
	name        string
	description string
	repeating   bool
	required    bool
	defaults    []string
	validators  []Validator
}

// Name returns the entry's unique key within its owning command.
func (b *base) Name() string { return b.name }

// Description returns the human-readable description used by help output.
func (b *base) Description() string { return b.description }

// IsRepeating reports whether the entry may collect more than one
// occurrence or value.
func (b *base) IsRepeating() bool { return b.repeating }

// IsRequired reports whether the entry must be supplied by the user.
func (b *base) IsRequired() bool { return b.required }

// DefaultValues returns the declared default value sequence, which is
// installed by the parser when the entry collects nothing.
func (b *base) DefaultValues() []string { return b.defaults }

// Validators returns the ordered validator chain.
func (b *base) Validators() []Validator { return b.validators }

// setDefaults records the default sequence and clears requiredness: an
// entry with a default can never be missing.
func (b *base) setDefaults(values []string) {
	b.defaults = values
	if len(values) > 0 {
		b.required = false
	}
}
