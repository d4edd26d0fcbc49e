/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/parser"
)

const fullManifest = `
kind: CommandManifest
apiVersion: commandmanifest.dgxc.io/v1
spec:
  name: forge
  summary: a build orchestrator
  version: 2.1.0
  authors: ["Build Infra Team"]
  binary: forge
  flags:
    - name: verbose
      short: v
      long: verbose
      description: increase log verbosity
      repeating: true
  options:
    - name: config
      short: c
      long: config
      valueTag: path
      path: file
  commands:
    - name: build
      summary: compile targets
      topic: core
      options:
        - name: profile
          long: profile
          default: [release]
          oneOf: [debug, release]
      arguments:
        - name: targets
          repeating: true
          required: false
    - name: clean
      summary: remove build outputs
  defaultCommand: build
`

func TestLoadFullManifest(t *testing.T) {
	prog, err := Load([]byte(fullManifest))
	require.NoError(t, err)

	assert.Equal(t, "forge", prog.Name())
	assert.Equal(t, "2.1.0", prog.Version())
	assert.Equal(t, []string{"Build Infra Team"}, prog.Authors())
	assert.Equal(t, "forge", prog.Binary())

	// Reserved flags come first, then declared ones.
	require.Len(t, prog.Flags(), 3)
	assert.Equal(t, "verbose", prog.Flags()[2].Name())

	require.Len(t, prog.Options(), 1)
	assert.Equal(t, "path", prog.Options()[0].Tag())

	assert.Equal(t, []string{"build", "clean"}, prog.SubcommandNames())
	require.NotNil(t, prog.DefaultSubcommand())
	assert.Equal(t, "build", prog.DefaultSubcommand().Name())
	assert.Equal(t, "core", prog.Subcommand("build").TopicGroup())

	build := prog.Subcommand("build")
	require.Len(t, build.Options(), 1)
	require.Len(t, build.Arguments(), 1)
	assert.True(t, build.Arguments()[0].IsRepeating())
}

func TestLoadedModelParses(t *testing.T) {
	prog, err := Load([]byte(fullManifest))
	require.NoError(t, err)

	out, err := parser.Parse(prog, []string{"forge", "-vv", "build", "a", "b"})
	require.NoError(t, err)
	require.NotNil(t, out.Result)

	build := out.Result.Child()
	require.NotNil(t, build)
	assert.Equal(t, 2, build.Occurrences("verbose"))
	assert.Equal(t, "release", build.Option("profile", ""))
	assert.Equal(t, []string{"a", "b"}, build.Args("targets", nil))
}

func TestLoadedValidatorRejects(t *testing.T) {
	prog, err := Load([]byte(fullManifest))
	require.NoError(t, err)

	_, err = parser.Parse(prog, []string{"forge", "build", "--profile", "relaese"})
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrCodeValidation, perr.Code)
	assert.Contains(t, err.Error(), `did you mean "release"?`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullManifest), 0o644))

	prog, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "forge", prog.Name())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDumpRoundTrip(t *testing.T) {
	prog, err := Load([]byte(fullManifest))
	require.NoError(t, err)

	data, err := Dump(prog)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: CommandManifest")

	again, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, prog.Name(), again.Name())
	assert.Equal(t, prog.Version(), again.Version())
	assert.Equal(t, prog.SubcommandNames(), again.SubcommandNames())
	require.NotNil(t, again.DefaultSubcommand())
	assert.Equal(t, "build", again.DefaultSubcommand().Name())
	assert.Equal(t, "core", again.Subcommand("build").TopicGroup())

	// The reloaded model parses identically, validators included.
	out, err := parser.Parse(again, []string{"forge", "build", "--profile", "debug", "x"})
	require.NoError(t, err)
	assert.Equal(t, "debug", out.Result.Child().Option("profile", ""))

	_, err = parser.Parse(again, []string{"forge", "build", "--profile", "bogus"})
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrCodeValidation, perr.Code)
}

func TestWrite(t *testing.T) {
	prog, err := Load([]byte(fullManifest))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, prog))
	assert.Contains(t, buf.String(), "name: forge")
}

func TestLoadRejectsWrongKind(t *testing.T) {
	_, err := Load([]byte("kind: Recipe\nspec:\n  name: prog\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid command manifest")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("kind: [unclosed"))
	assert.Error(t, err)
}

func TestFlagMisuse(t *testing.T) {
	doc := `
kind: CommandManifest
spec:
  name: prog
  flags:
    - name: mode
      long: mode
      default: [fast]
`
	_, err := Load([]byte(doc))
	var merr *command.ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, command.ErrCodeFlagMisuse, merr.Code)
}

func TestRequiredWithDefaultRejected(t *testing.T) {
	doc := `
kind: CommandManifest
spec:
  name: prog
  options:
    - name: out
      long: out
      required: true
      default: [a.txt]
`
	_, err := Load([]byte(doc))
	var merr *command.ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, command.ErrCodeRequiredWithDefault, merr.Code)
}

func TestModelErrorsPropagate(t *testing.T) {
	doc := `
kind: CommandManifest
spec:
  name: prog
  options:
    - name: out
      long: out
    - name: out
      long: o2
`
	_, err := Load([]byte(doc))
	var merr *command.ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, command.ErrCodeDuplicateName, merr.Code)
}

func TestUnknownDefaultCommand(t *testing.T) {
	doc := `
kind: CommandManifest
spec:
  name: prog
  commands:
    - name: build
  defaultCommand: deploy
`
	_, err := Load([]byte(doc))
	var merr *command.ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, command.ErrCodeUnknownDefault, merr.Code)
}

func TestUnknownPathConstraint(t *testing.T) {
	doc := `
kind: CommandManifest
spec:
  name: prog
  options:
    - name: out
      long: out
      path: socket
`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*command.ModelError)))
	assert.Contains(t, err.Error(), "unknown path constraint")
}
