/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagQueries(t *testing.T) {
	r := New("prog")

	assert.False(t, r.FlagIsSet("verbose"))
	assert.Equal(t, 0, r.Occurrences("verbose"))

	r.BumpFlag("verbose", 1)
	assert.True(t, r.FlagIsSet("verbose"))
	assert.Equal(t, 1, r.Occurrences("verbose"))

	r.BumpFlag("verbose", 3)
	assert.Equal(t, 4, r.Occurrences("verbose"))
}

func TestOptionQueries(t *testing.T) {
	r := New("prog")

	assert.Equal(t, "fallback", r.Option("out", "fallback"))
	assert.Equal(t, []string{"d"}, r.Options("out", []string{"d"}))

	r.AppendOption("out", "a")
	r.AppendOption("out", "b")
	assert.Equal(t, "b", r.Option("out", "fallback"), "last value wins")
	assert.Equal(t, []string{"a", "b"}, r.Options("out", nil))
	assert.True(t, r.HasOption("out"))
}

func TestArgQueries(t *testing.T) {
	r := New("prog")

	assert.Equal(t, "d", r.Arg("src", "d"))

	r.AppendArg("src", "one", "two")
	assert.Equal(t, "two", r.Arg("src", "d"))
	assert.Equal(t, []string{"one", "two"}, r.Args("src", nil))
	assert.True(t, r.HasArg("src"))
}

func TestRest(t *testing.T) {
	r := New("prog")
	assert.Empty(t, r.Rest())

	r.SetRest([]string{"--raw", "tail"})
	assert.Equal(t, []string{"--raw", "tail"}, r.Rest())
}

func TestSpawnSeedsDeepCopy(t *testing.T) {
	parent := New("prog")
	parent.BumpFlag("verbose", 2)
	parent.AppendOption("out", "a")
	parent.AppendArg("src", "x")

	child := parent.Spawn("build")

	assert.Equal(t, "build", child.Name())
	assert.Same(t, child, parent.Child())
	assert.Same(t, parent, child.Parent())
	assert.Equal(t, 2, child.Occurrences("verbose"))
	assert.Equal(t, []string{"a"}, child.Options("out", nil))
	assert.Equal(t, []string{"x"}, child.Args("src", nil))

	// Mutating the child must not leak into the parent.
	child.AppendOption("out", "b")
	child.BumpFlag("verbose", 1)
	assert.Equal(t, []string{"a"}, parent.Options("out", nil))
	assert.Equal(t, 2, parent.Occurrences("verbose"))
}

func TestAppendReplacesDefaultedSequence(t *testing.T) {
	r := New("prog")
	r.SetOption("mode", []string{"auto"})
	r.SetArg("dst", []string{"."})

	r.AppendOption("mode", "manual")
	assert.Equal(t, []string{"manual"}, r.Options("mode", nil))

	r.AppendArg("dst", "/tmp")
	assert.Equal(t, []string{"/tmp"}, r.Args("dst", nil))

	// Explicit values are never replaced, only extended.
	r.AppendOption("mode", "again")
	assert.Equal(t, []string{"manual", "again"}, r.Options("mode", nil))
}

func TestSpawnPreservesDefaultedMarks(t *testing.T) {
	parent := New("prog")
	parent.SetOption("mode", []string{"auto"})

	child := parent.Spawn("sub")
	child.AppendOption("mode", "manual")

	assert.Equal(t, []string{"manual"}, child.Options("mode", nil))
	assert.Equal(t, []string{"auto"}, parent.Options("mode", nil))
}

func TestOnDispatch(t *testing.T) {
	parent := New("prog")
	parent.Spawn("build")

	var calls []string
	got := parent.
		On("clean", func(*Result) { calls = append(calls, "clean") }).
		On("build", func(r *Result) { calls = append(calls, "build:"+r.Name()) })

	assert.Same(t, parent, got, "On returns the receiver for chaining")
	assert.Equal(t, []string{"build:build"}, calls)
}

func TestOnWithoutChild(t *testing.T) {
	r := New("prog")
	called := false
	r.On("build", func(*Result) { called = true })
	assert.False(t, called)
}
