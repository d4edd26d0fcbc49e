/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/result"
)

// Outcome is the terminal value of a successful parse. The engine itself
// never prints or exits; the boundary layer inspects the outcome and
// decides what to do with the process.
//
// Exactly one of the three shapes applies: Result is set for an ordinary
// parse, Help is set when the reserved help flag short-circuited the parse,
// and Version is true when the reserved version flag did.
type Outcome struct {
	// Result is the root of the per-level result chain.
	Result *result.Result

	// Help is the command level whose help was requested.
	Help *command.Command

	// Version reports that the program version was requested.
	Version bool
}
