/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package entry defines the three declarable entry kinds of a command
// surface: Flag (presence-counted), Option (named, value-taking) and
// Argument (positional). Entries are built with chained setters and are
// treated as immutable once added to a command; parsing only reads them.
//
// Entries enforce no cross-entry rules themselves. Uniqueness of names and
// forms, positional ordering and the flag restrictions are checked eagerly
// by the command package when an entry is added.
package entry
