/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package parser is the engine that walks a raw argument vector against a
// declared command model and produces the result chain.
//
// # Token grammar
//
// The engine understands exactly the conventional flag/option/argument
// shape, applied left to right at every command level:
//
//   - "--name" and "-n" match flags and options by long or short form.
//   - "--name=value" (split on the first "=") supplies an inline option
//     value; flags reject inline values.
//   - "-vvvv" (one repeated character) counts as four occurrences of the
//     short flag "-v". Distinct combined shorts ("-vl") are not supported.
//   - A token without a leading dash fills the next positional slot; once
//     slots are exhausted it names a subcommand, whose level consumes the
//     remaining stream recursively.
//   - "--" ends scanning for the current level; the tail is exposed
//     verbatim through Result.Rest.
//   - A bare "-" is positional.
//
// # Escaping option-like values
//
// A value that would otherwise be mistaken for an option can be escaped
// with a single leading backslash: "\--literal" is consumed as the value
// "--literal". The engine strips exactly one leading backslash from option
// values and positional tokens; this marker is a boundary convention, not
// part of the declared grammar, and validators never see the backslash.
//
// # Passes
//
// After the token walk, each level runs in order: help/version
// short-circuit, defaulting, requiredness and cardinality checks, validator
// chains, subcommand dispatch (falling back to the declared default
// subcommand when the stream named none). Every violation aborts the whole
// parse immediately with a *ParseError; the engine returns no partial
// results and is not resumable.
//
// The engine performs no IO: help and version requests are reported as
// Outcome values for the boundary layer to render, and Prometheus metrics
// are the only observable side effect.
package parser
