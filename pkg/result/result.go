/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package result

// Result is the structured output of parsing one command level. It maps
// entry names to collected flag occurrence counts and option/argument value
// sequences, links downward to the matched subcommand's Result and upward
// to the parent level, and carries the leftover tokens that followed a
// literal "--" separator.
//
// A Result is written only by the parsing engine while a parse is in
// flight; once the parse returns it is owned by the caller and must be
// treated as read-only.
type Result struct {
	name string

	flags   map[string]int
	options map[string][]string
	args    map[string][]string
	rest    []string

	// defaultedOpts and defaultedArgs mark entries whose values were
	// installed by the defaulting pass rather than collected from tokens.
	// An explicit value arriving later (at a deeper level, through the
	// seeded copy) replaces a defaulted sequence instead of appending to it.
	defaultedOpts map[string]bool
	defaultedArgs map[string]bool

	parent *Result
	child  *Result
}

// New creates an empty result for one command level.
func New(name string) *Result {
	return &Result{
		name:          name,
		flags:         make(map[string]int),
		options:       make(map[string][]string),
		args:          make(map[string][]string),
		defaultedOpts: make(map[string]bool),
		defaultedArgs: make(map[string]bool),
	}
}

// Name returns the name of the command this level was parsed against.
func (r *Result) Name() string { return r.name }

// FlagIsSet reports whether the named flag occurred at least once.
func (r *Result) FlagIsSet(name string) bool { return r.flags[name] > 0 }

// Occurrences returns how many times the named flag occurred, counting
// stacked short forms (-vvv) once per repetition.
func (r *Result) Occurrences(name string) int { return r.flags[name] }

// Option returns the last collected value of the named option, or def when
// the option collected nothing.
func (r *Result) Option(name, def string) string {
	values := r.options[name]
	if len(values) == 0 {
		return def
	}
	return values[len(values)-1]
}

// Options returns the full collected value sequence of the named option,
// or def when the option collected nothing.
func (r *Result) Options(name string, def []string) []string {
	values := r.options[name]
	if len(values) == 0 {
		return def
	}
	return values
}

// Arg returns the last collected value of the named positional argument,
// or def when the slot collected nothing.
func (r *Result) Arg(name, def string) string {
	values := r.args[name]
	if len(values) == 0 {
		return def
	}
	return values[len(values)-1]
}

// Args returns the full collected value sequence of the named positional
// argument, or def when the slot collected nothing.
func (r *Result) Args(name string, def []string) []string {
	values := r.args[name]
	if len(values) == 0 {
		return def
	}
	return values
}

// Rest returns the tokens that followed a literal "--" at this level,
// verbatim and unparsed.
func (r *Result) Rest() []string { return r.rest }

// Child returns the result of the matched subcommand, or nil when parsing
// stopped at this level.
func (r *Result) Child() *Result { return r.child }

// Parent returns the result of the enclosing command level, or nil at the
// root. The reference is for upward queries only; the parent owns the
// child, never the reverse.
func (r *Result) Parent() *Result { return r.parent }

// On invokes handler with the matched subcommand's result when that
// subcommand's name equals name. It returns the receiver so sibling
// dispatch calls chain at the same level:
//
//	res.On("build", runBuild).On("clean", runClean)
func (r *Result) On(name string, handler func(*Result)) *Result {
	if r.child != nil && r.child.name == name {
		handler(r.child)
	}
	return r
}
