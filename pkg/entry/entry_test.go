/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package entry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagChaining(t *testing.T) {
	f := NewFlag("verbose").Short("v").Long("verbose").Describe("more output").Repeating(true)

	assert.Equal(t, "verbose", f.Name())
	assert.Equal(t, "v", f.ShortForm())
	assert.Equal(t, "verbose", f.LongForm())
	assert.Equal(t, "more output", f.Description())
	assert.True(t, f.IsRepeating())
	assert.False(t, f.IsRequired())
	assert.Empty(t, f.DefaultValues())
}

func TestOptionDefaultClearsRequired(t *testing.T) {
	o := NewOption("out").Long("out").Required(true)
	assert.True(t, o.IsRequired())

	o.Default("reee")
	assert.False(t, o.IsRequired())
	assert.Equal(t, []string{"reee"}, o.DefaultValues())
}

func TestOptionRequiredOptionalInverse(t *testing.T) {
	o := NewOption("mode").Long("mode")
	assert.False(t, o.IsRequired())

	o.Required(true)
	assert.True(t, o.IsRequired())

	o.Optional(true)
	assert.False(t, o.IsRequired())

	o.Optional(false)
	assert.True(t, o.IsRequired())
}

func TestOptionValueTagDefault(t *testing.T) {
	o := NewOption("out").Long("out")
	assert.Equal(t, "value", o.Tag())

	o.ValueTag("PATH")
	assert.Equal(t, "PATH", o.Tag())
}

func TestArgumentDefaults(t *testing.T) {
	a := NewArgument("src")
	assert.True(t, a.IsRequired(), "arguments are required by default")
	assert.Equal(t, "src", a.Tag(), "tag defaults to the name")

	a.SetTag("SOURCE")
	assert.Equal(t, "SOURCE", a.Tag())

	a.Default("here")
	assert.False(t, a.IsRequired())
}

type failingValidator struct{ err error }

func (f failingValidator) Validate(string, []string) error { return f.err }

func TestValidatorChainOrder(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	o := NewOption("mode").Long("mode").
		Validate(failingValidator{errA}).
		Validate(failingValidator{errB})

	vs := o.Validators()
	assert.Len(t, vs, 2)
	assert.Equal(t, errA, vs[0].Validate("mode", nil))
	assert.Equal(t, errB, vs[1].Validate("mode", nil))
}
