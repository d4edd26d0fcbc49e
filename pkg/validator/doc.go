/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator ships the built-in post-parse value checkers that can
// be attached to options and positional arguments: whitelist membership
// (OneOf), filesystem predicates (ExistingPath, ExistingFile, ExistingDir)
// and user-supplied predicates (Func, ForEach).
//
// All of them satisfy the entry.Validator interface. The parser runs an
// entry's chain in declaration order against the full collected value
// sequence; the first failure aborts the whole parse.
package validator
