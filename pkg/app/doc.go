/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package app is the process boundary of a clix program. It owns everything
// the parsing engine deliberately does not: reading os.Args, printing help,
// version and error text, and translating outcomes into exit codes.
//
//	prog := command.NewProgram("greet", command.WithVersion("1.0.0"))
//	_ = prog.AddArgument(entry.NewArgument("name"))
//
//	os.Exit(app.New(prog, app.WithHandler(run)).Run(context.Background()))
package app
