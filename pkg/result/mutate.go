/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package result

// The mutators below exist for the parsing engine. Embedders should never
// call them: a Result is immutable once a parse returns.

// BumpFlag increments the named flag's occurrence count by n.
func (r *Result) BumpFlag(name string, n int) {
	r.flags[name] += n
}

// AppendOption appends values to the named option's collected sequence. A
// sequence installed by SetOption is replaced, not appended to: the explicit
// value wins over an inherited default.
func (r *Result) AppendOption(name string, values ...string) {
	if r.defaultedOpts[name] {
		delete(r.defaultedOpts, name)
		r.options[name] = nil
	}
	r.options[name] = append(r.options[name], values...)
}

// SetOption installs the named option's default value sequence and marks it
// as defaulted. Used by the defaulting pass.
func (r *Result) SetOption(name string, values []string) {
	r.options[name] = append([]string(nil), values...)
	r.defaultedOpts[name] = true
}

// AppendArg appends values to the named argument's collected sequence. A
// sequence installed by SetArg is replaced, not appended to.
func (r *Result) AppendArg(name string, values ...string) {
	if r.defaultedArgs[name] {
		delete(r.defaultedArgs, name)
		r.args[name] = nil
	}
	r.args[name] = append(r.args[name], values...)
}

// SetArg installs the named argument's default value sequence and marks it
// as defaulted. Used by the defaulting pass.
func (r *Result) SetArg(name string, values []string) {
	r.args[name] = append([]string(nil), values...)
	r.defaultedArgs[name] = true
}

// SetRest records the tokens following a literal "--" at this level.
func (r *Result) SetRest(tokens []string) {
	r.rest = tokens
}

// HasOption reports whether the named option collected any value.
func (r *Result) HasOption(name string) bool { return len(r.options[name]) > 0 }

// HasArg reports whether the named argument collected any value.
func (r *Result) HasArg(name string) bool { return len(r.args[name]) > 0 }

// Spawn creates the child result for a matched subcommand, seeded with a
// deep copy of this level's collected flags, options and arguments so the
// child inherits ancestor-scoped values. The child is linked below the
// receiver and returned.
func (r *Result) Spawn(name string) *Result {
	child := New(name)
	for k, v := range r.flags {
		child.flags[k] = v
	}
	for k, v := range r.options {
		child.options[k] = append([]string(nil), v...)
	}
	for k, v := range r.args {
		child.args[k] = append([]string(nil), v...)
	}
	for k := range r.defaultedOpts {
		child.defaultedOpts[k] = true
	}
	for k := range r.defaultedArgs {
		child.defaultedArgs[k] = true
	}
	child.parent = r
	r.child = child
	return child
}
