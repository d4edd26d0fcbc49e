/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest loads a program's command model from a declarative YAML
// document of kind CommandManifest.
//
// The loader is a thin front-end over the programmatic model builders: every
// declared flag, option, argument and subcommand goes through the same Add
// calls as hand-written construction, so the full set of structural rules
// applies and violations surface as *command.ModelError values.
//
// A minimal manifest:
//
//	kind: CommandManifest
//	apiVersion: commandmanifest.dgxc.io/v1
//	spec:
//	  name: prog
//	  version: 1.2.0
//	  options:
//	    - name: output
//	      short: o
//	      long: out
//	  commands:
//	    - name: build
//	      summary: build the project
package manifest
