/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package entry

// Argument is a positional entry taking one string value per slot.
// Arguments are required unless explicitly marked optional.
type Argument struct {
	base

	tag string
}

// NewArgument creates a required positional argument with the given name.
func NewArgument(name string) *Argument {
	return &Argument{base: base{name: name, required: true}}
}

// Describe sets the help description.
func (a *Argument) Describe(text string) *Argument {
	a.description = text
	return a
}

// Required toggles requiredness. Required and Optional are inverses; the
// last call wins.
func (a *Argument) Required(required bool) *Argument {
	a.required = required
	return a
}

// Optional toggles requiredness off (Optional(true) == Required(false)).
func (a *Argument) Optional(optional bool) *Argument {
	a.required = !optional
	return a
}

// Repeating lets the argument absorb every remaining positional token.
// Only the last declared argument of a command may repeat.
func (a *Argument) Repeating(repeating bool) *Argument {
	a.repeating = repeating
	return a
}

// Default declares the value sequence installed when no token fills the
// slot. Setting a non-empty default clears requiredness.
func (a *Argument) Default(values ...string) *Argument {
	a.setDefaults(values)
	return a
}

// Validate appends a validator to the chain. Validators run in declaration
// order against the full collected value sequence; the first failure wins.
func (a *Argument) Validate(v Validator) *Argument {
	a.validators = append(a.validators, v)
	return a
}

// SetTag sets the display placeholder used in help output.
func (a *Argument) SetTag(tag string) *Argument {
	a.tag = tag
	return a
}

// Tag returns the display placeholder, defaulting to the argument name.
func (a *Argument) Tag() string {
	if a.tag == "" {
		return a.name
	}
	return a.tag
}
