/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package command models the declared command surface: a tree of commands,
// each owning ordered flags, options and positional arguments, rooted at a
// program node carrying version and author identity.
//
// Structural consistency is enforced eagerly: every Add call re-validates
// the command and returns a ModelError on any violation (duplicate names or
// forms, required-with-default conflicts, positional ordering rules,
// argument/subcommand ambiguity). Nothing is deferred to parse time; a
// model that built without error is guaranteed parseable.
//
// The model is read-only during parsing and may be reused across parses as
// long as no Add call interleaves with one.
package command
