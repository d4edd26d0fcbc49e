/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package command

import (
	"testing"

	"github.com/NVIDIA/clix/pkg/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireModelErr(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var merr *ModelError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, code, merr.Code)
}

func TestNewProgramReservedFlags(t *testing.T) {
	p := NewProgram("prog", WithVersion("1.2.3"), WithAuthors("me"), WithBinaryName("pg"))

	require.Len(t, p.Flags(), 2)
	assert.Equal(t, HelpFlagName, p.Flags()[0].Name())
	assert.Equal(t, "h", p.Flags()[0].ShortForm())
	assert.Equal(t, VersionFlagName, p.Flags()[1].Name())
	assert.Empty(t, p.Flags()[1].ShortForm(), "version flag is long-only")

	assert.Equal(t, "1.2.3", p.Version())
	assert.Equal(t, []string{"me"}, p.Authors())
	assert.Equal(t, "pg", p.Binary())

	// Reserved names participate in uniqueness checks.
	requireModelErr(t, p.AddFlag(entry.NewFlag("help").Long("halp")), ErrCodeDuplicateName)
	requireModelErr(t, p.AddOption(entry.NewOption("version").Long("ver")), ErrCodeDuplicateName)
	requireModelErr(t, p.AddFlag(entry.NewFlag("aitch").Short("h")), ErrCodeDuplicateForm)
}

func TestAddNameValidation(t *testing.T) {
	c := New("cmd", "")

	requireModelErr(t, c.AddFlag(entry.NewFlag("").Short("x")), ErrCodeInvalidName)
	requireModelErr(t, c.AddFlag(entry.NewFlag("-bad").Short("x")), ErrCodeInvalidName)
	requireModelErr(t, c.AddFlag(entry.NewFlag("no spaces").Short("x")), ErrCodeInvalidName)
	assert.NoError(t, c.AddFlag(entry.NewFlag("ok_name-1").Short("x")))
}

func TestAddDuplicateNameAcrossKinds(t *testing.T) {
	c := New("cmd", "")
	require.NoError(t, c.AddOption(entry.NewOption("out").Long("out")))

	requireModelErr(t, c.AddFlag(entry.NewFlag("out").Short("o")), ErrCodeDuplicateName)
	requireModelErr(t, c.AddArgument(entry.NewArgument("out")), ErrCodeDuplicateName)
}

func TestAddFormValidation(t *testing.T) {
	c := New("cmd", "")

	requireModelErr(t, c.AddFlag(entry.NewFlag("nake")), ErrCodeMissingForm)
	requireModelErr(t, c.AddOption(entry.NewOption("dashy").Long("--dashy")), ErrCodeInvalidForm)
	require.NoError(t, c.AddFlag(entry.NewFlag("verbose").Short("v").Long("verbose")))
	requireModelErr(t, c.AddOption(entry.NewOption("volume").Short("v")), ErrCodeDuplicateForm)
	requireModelErr(t, c.AddFlag(entry.NewFlag("chatty").Long("verbose")), ErrCodeDuplicateForm)
}

func TestRequiredWithDefaultRejected(t *testing.T) {
	c := New("cmd", "")

	// Required(true) after Default keeps both set; Add must reject it.
	opt := entry.NewOption("mode").Long("mode").Default("fast").Required(true)
	requireModelErr(t, c.AddOption(opt), ErrCodeRequiredWithDefault)

	arg := entry.NewArgument("src").Default("here").Required(true)
	requireModelErr(t, c.AddArgument(arg), ErrCodeRequiredWithDefault)
}

func TestArgumentOrdering(t *testing.T) {
	c := New("cmd", "")
	require.NoError(t, c.AddArgument(entry.NewArgument("first")))
	require.NoError(t, c.AddArgument(entry.NewArgument("second").Optional(true)))

	requireModelErr(t, c.AddArgument(entry.NewArgument("third")), ErrCodeArgumentOrder)

	d := New("cmd2", "")
	require.NoError(t, d.AddArgument(entry.NewArgument("files").Repeating(true)))
	requireModelErr(t, d.AddArgument(entry.NewArgument("more")), ErrCodeArgumentOrder)
}

func TestSubcommandArgumentConflicts(t *testing.T) {
	// Optional trailing argument blocks subcommands.
	c := New("cmd", "")
	require.NoError(t, c.AddArgument(entry.NewArgument("maybe").Optional(true)))
	requireModelErr(t, c.AddCommand(New("sub", "")), ErrCodeSubcommandConflict)

	// Repeating trailing argument blocks subcommands.
	d := New("cmd2", "")
	require.NoError(t, d.AddArgument(entry.NewArgument("files").Repeating(true)))
	requireModelErr(t, d.AddCommand(New("sub", "")), ErrCodeSubcommandConflict)

	// Subcommands block optional or repeating arguments, but required
	// non-repeating arguments stay allowed.
	e := New("cmd3", "")
	require.NoError(t, e.AddCommand(New("sub", "")))
	requireModelErr(t, e.AddArgument(entry.NewArgument("maybe").Optional(true)), ErrCodeSubcommandConflict)
	requireModelErr(t, e.AddArgument(entry.NewArgument("files").Repeating(true)), ErrCodeSubcommandConflict)
	assert.NoError(t, e.AddArgument(entry.NewArgument("must")))
}

func TestDuplicateSubcommand(t *testing.T) {
	c := New("cmd", "")
	require.NoError(t, c.AddCommand(New("sub", "")))
	requireModelErr(t, c.AddCommand(New("sub", "")), ErrCodeDuplicateName)
}

func TestDefaultCommand(t *testing.T) {
	c := New("cmd", "")
	requireModelErr(t, c.DefaultCommand("missing"), ErrCodeUnknownDefault)

	sub := New("sub", "")
	require.NoError(t, c.AddCommand(sub))
	require.NoError(t, c.DefaultCommand("sub"))
	assert.Same(t, sub, c.DefaultSubcommand())
}

func TestTopicPropagation(t *testing.T) {
	c := New("cmd", "")
	core := New("build", "")
	aux := New("lint", "")
	plain := New("misc", "")

	c.Topic("core")
	require.NoError(t, c.AddCommand(core))
	c.Topic("extras")
	require.NoError(t, c.AddCommand(aux))
	c.Topic("")
	require.NoError(t, c.AddCommand(plain))

	assert.Equal(t, "core", core.TopicGroup())
	assert.Equal(t, "extras", aux.TopicGroup())
	assert.Empty(t, plain.TopicGroup())
}

func TestChainAndParent(t *testing.T) {
	p := NewProgram("prog")
	mid := New("mid", "")
	leaf := New("leaf", "")
	require.NoError(t, p.AddCommand(mid))
	require.NoError(t, mid.AddCommand(leaf))

	assert.Equal(t, []string{"prog", "mid", "leaf"}, leaf.Chain())
	assert.Same(t, mid, leaf.Parent())
	assert.Same(t, p, leaf.Root())
	assert.Equal(t, "prog", leaf.Binary())
}

func TestResolveAcrossAncestors(t *testing.T) {
	p := NewProgram("prog")
	require.NoError(t, p.AddFlag(entry.NewFlag("verbose").Short("v").Long("verbose")))
	sub := New("sub", "")
	require.NoError(t, p.AddCommand(sub))

	assert.NotNil(t, sub.ResolveFlag("verbose", false, false), "ancestor flags stay reachable")
	assert.NotNil(t, sub.ResolveFlag("v", true, false))
	assert.Nil(t, sub.ResolveFlag("verbose", true, false), "short lookup ignores long forms")
	assert.Nil(t, p.ResolveOption("verbose", false, false), "flags never resolve as options")
}

func TestResolveDefaultSubcommandChain(t *testing.T) {
	p := NewProgram("prog")
	mid := New("mid", "")
	leaf := New("leaf", "")
	require.NoError(t, leaf.AddOption(entry.NewOption("depth").Long("depth")))
	require.NoError(t, mid.AddCommand(leaf))
	require.NoError(t, mid.DefaultCommand("leaf"))
	require.NoError(t, p.AddCommand(mid))
	require.NoError(t, p.DefaultCommand("mid"))

	assert.Nil(t, p.ResolveOption("depth", false, false))
	assert.NotNil(t, p.ResolveOption("depth", false, true),
		"default-subcommand search follows the chain")
}

func TestFormsCandidates(t *testing.T) {
	p := NewProgram("prog")
	require.NoError(t, p.AddOption(entry.NewOption("out").Short("o").Long("out")))
	sub := New("sub", "")
	require.NoError(t, sub.AddOption(entry.NewOption("depth").Long("depth")))
	require.NoError(t, p.AddCommand(sub))

	long := sub.Forms(false)
	assert.Contains(t, long, "depth")
	assert.Contains(t, long, "out")
	assert.Contains(t, long, "help")
	assert.NotContains(t, long, "o")

	short := sub.Forms(true)
	assert.Contains(t, short, "o")
	assert.Contains(t, short, "h")
	assert.NotContains(t, short, "out")
}
