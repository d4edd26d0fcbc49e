/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package entry

// DefaultValueTag is the display placeholder used by options that do not
// declare their own.
const DefaultValueTag = "value"

// Option is a named entry taking one string value per occurrence. Options
// are optional unless marked required.
type Option struct {
	base

	shortForm string
	longForm  string
	valueTag  string
}

// NewOption creates an option with the given name. At least one of Short or
// Long must be set before the option is added to a command.
func NewOption(name string) *Option {
	return &Option{base: base{name: name}}
}

// Short sets the short form (matched after a single dash).
func (o *Option) Short(form string) *Option {
	o.shortForm = form
	return o
}

// Long sets the long form (matched after a double dash).
func (o *Option) Long(form string) *Option {
	o.longForm = form
	return o
}

// Describe sets the help description.
func (o *Option) Describe(text string) *Option {
	o.description = text
	return o
}

// Required toggles requiredness. Required and Optional are inverses; the
// last call wins.
func (o *Option) Required(required bool) *Option {
	o.required = required
	return o
}

// Optional toggles requiredness off (Optional(true) == Required(false)).
func (o *Option) Optional(optional bool) *Option {
	o.required = !optional
	return o
}

// Repeating allows the option to collect one value per occurrence.
func (o *Option) Repeating(repeating bool) *Option {
	o.repeating = repeating
	return o
}

// Default declares the value sequence installed when the option is never
// supplied. Setting a non-empty default clears requiredness.
func (o *Option) Default(values ...string) *Option {
	o.setDefaults(values)
	return o
}

// Validate appends a validator to the chain. Validators run in declaration
// order against the full collected value sequence; the first failure wins.
func (o *Option) Validate(v Validator) *Option {
	o.validators = append(o.validators, v)
	return o
}

// ValueTag sets the display placeholder used in help output.
func (o *Option) ValueTag(tag string) *Option {
	o.valueTag = tag
	return o
}

// Tag returns the display placeholder, defaulting to "value".
func (o *Option) Tag() string {
	if o.valueTag == "" {
		return DefaultValueTag
	}
	return o.valueTag
}

// ShortForm returns the short form, or "" when none is declared.
func (o *Option) ShortForm() string { return o.shortForm }

// LongForm returns the long form, or "" when none is declared.
func (o *Option) LongForm() string { return o.longForm }
