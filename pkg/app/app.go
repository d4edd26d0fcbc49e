/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/help"
	"github.com/NVIDIA/clix/pkg/parser"
	"github.com/NVIDIA/clix/pkg/result"
)

// Handler consumes the result chain of a successful parse. A returned error
// is reported to stderr and turns into a non-zero exit code.
type Handler func(ctx context.Context, res *result.Result) error

// errorLabel renders the "Error:" prefix. Color is suppressed automatically
// when stderr is not a terminal.
var errorLabel = color.New(color.FgRed, color.Bold)

// App binds a command model to the process boundary: argv, stdout, stderr
// and the exit code.
type App struct {
	root    *command.Command
	stdout  io.Writer
	stderr  io.Writer
	args    []string
	handler Handler
}

// Option is a functional option for configuring an App.
type Option func(*App)

// WithStdout redirects normal output (help, version). Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// WithStderr redirects error output. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(a *App) {
		a.stderr = w
	}
}

// WithArgs overrides the token vector. Defaults to os.Args, including the
// leading binary name.
func WithArgs(args []string) Option {
	return func(a *App) {
		a.args = args
	}
}

// WithHandler sets the function invoked with the result chain after a
// successful parse.
func WithHandler(h Handler) Option {
	return func(a *App) {
		a.handler = h
	}
}

// New creates an App for the program rooted at root.
func New(root *command.Command, opts ...Option) *App {
	a := &App{
		root:   root,
		stdout: os.Stdout,
		stderr: os.Stderr,
		args:   os.Args,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run parses the token vector and acts on the outcome. It returns the
// process exit code: 0 on success and for help/version requests, 1 when the
// input was rejected or the handler failed.
func (a *App) Run(ctx context.Context) int {
	out, err := parser.Parse(a.root, a.args)
	if err != nil {
		a.reportParseError(err)
		return 1
	}

	switch {
	case out.Help != nil:
		if err := help.Render(a.stdout, out.Help); err != nil {
			fmt.Fprintf(a.stderr, "%s %v\n", errorLabel.Sprint("Error:"), err)
			return 1
		}
		return 0
	case out.Version:
		fmt.Fprintf(a.stdout, "%s %s\n", a.root.Binary(), a.root.Version())
		return 0
	}

	slog.Debug("dispatching parsed command",
		"program", a.root.Name())

	if a.handler == nil {
		return 0
	}
	if err := a.handler(ctx, out.Result); err != nil {
		fmt.Fprintf(a.stderr, "%s %v\n", errorLabel.Sprint("Error:"), err)
		return 1
	}
	return 0
}

// reportParseError prints the rejection and the usage synopsis of the
// command level the failure was detected at.
func (a *App) reportParseError(err error) {
	fmt.Fprintf(a.stderr, "%s %v\n", errorLabel.Sprint("Error:"), err)

	var perr *parser.ParseError
	if errors.As(err, &perr) && perr.Command != nil {
		fmt.Fprintln(a.stderr, help.Usage(perr.Command))
	}
}
