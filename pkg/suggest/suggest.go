/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package suggest produces nearest-match candidates for "did you mean"
// diagnostics. It is used by the parser for unknown options, flags and
// subcommands, and by the whitelist validator for rejected values.
package suggest

import "github.com/agnivade/levenshtein"

// maxDistance is the similarity cutoff: candidates further away than this
// are never suggested.
const maxDistance = 2

// Nearest returns the candidate with the smallest edit distance to input.
// Ties keep the earliest candidate. The second return is false when no
// candidate lies within the cutoff.
func Nearest(input string, candidates []string) (string, bool) {
	best := ""
	bestDistance := maxDistance + 1

	for _, c := range candidates {
		if c == "" {
			continue
		}
		d := levenshtein.ComputeDistance(input, c)
		if d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return best, bestDistance <= maxDistance
}
