/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package result holds the queryable output of a successful parse. Each
// command level of the parse produces one Result; matched subcommands form
// a parent/child chain navigated with Child, Parent and the On dispatch
// helper.
package result
