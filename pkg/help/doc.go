/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package help renders usage synopsis lines and full help text from the
// command model. It reads the model only; the parser never depends on it
// beyond the boundary layer invoking Render when the reserved help flag
// short-circuits a parse.
package help
