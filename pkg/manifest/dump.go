/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/entry"
	"github.com/NVIDIA/clix/pkg/header"
	"github.com/NVIDIA/clix/pkg/validator"
)

// Dump serializes a program model back into a CommandManifest document.
// The output loads back into an equivalent model; validators that were
// attached programmatically and have no manifest representation (Func,
// ForEach) are omitted.
func Dump(prog *command.Command) ([]byte, error) {
	doc := document{
		Header: header.For(Kind),
		Spec: programSpec{
			commandSpec: dumpCommand(prog, true),
			Version:     prog.Version(),
			Authors:     prog.Authors(),
			Binary:      binaryOverride(prog),
		},
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command manifest: %w", err)
	}
	return data, nil
}

// Write serializes the model and writes it to w.
func Write(w io.Writer, prog *command.Command) error {
	data, err := Dump(prog)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// binaryOverride returns the explicit binary name, or "" when usage lines
// fall back to the program name.
func binaryOverride(prog *command.Command) string {
	if prog.Binary() == prog.Name() {
		return ""
	}
	return prog.Binary()
}

func dumpCommand(cmd *command.Command, root bool) commandSpec {
	spec := commandSpec{
		Name:    cmd.Name(),
		Summary: cmd.Summary(),
		Topic:   cmd.TopicGroup(),
	}
	for _, f := range cmd.Flags() {
		// The reserved root flags are re-registered by the loader.
		if root && (f.Name() == command.HelpFlagName || f.Name() == command.VersionFlagName) {
			continue
		}
		spec.Flags = append(spec.Flags, flagSpec{
			Name:        f.Name(),
			Short:       f.ShortForm(),
			Long:        f.LongForm(),
			Description: f.Description(),
			Repeating:   f.IsRepeating(),
		})
	}
	for _, o := range cmd.Options() {
		opt := optionSpec{
			Name:        o.Name(),
			Short:       o.ShortForm(),
			Long:        o.LongForm(),
			Description: o.Description(),
			Repeating:   o.IsRepeating(),
			Required:    o.IsRequired(),
			Default:     o.DefaultValues(),
		}
		if o.Tag() != entry.DefaultValueTag {
			opt.ValueTag = o.Tag()
		}
		opt.OneOf, opt.Path = dumpValidators(o.Validators())
		spec.Options = append(spec.Options, opt)
	}
	for _, a := range cmd.Arguments() {
		required := a.IsRequired()
		arg := argumentSpec{
			Name:        a.Name(),
			Description: a.Description(),
			Repeating:   a.IsRepeating(),
			Required:    &required,
			Default:     a.DefaultValues(),
		}
		if a.Tag() != a.Name() {
			arg.Tag = a.Tag()
		}
		arg.OneOf, arg.Path = dumpValidators(a.Validators())
		spec.Arguments = append(spec.Arguments, arg)
	}
	for _, sub := range cmd.Subcommands() {
		spec.Commands = append(spec.Commands, dumpCommand(sub, false))
	}
	if def := cmd.DefaultSubcommand(); def != nil {
		spec.DefaultCommand = def.Name()
	}
	return spec
}

// dumpValidators extracts the manifest-representable validators from a
// chain: the whitelist of a OneOf and the constraint name of a Path.
func dumpValidators(chain []entry.Validator) (oneOf []string, path string) {
	for _, v := range chain {
		switch v := v.(type) {
		case *validator.OneOf:
			oneOf = v.Allowed()
		case *validator.Path:
			path = v.Constraint()
		}
	}
	return oneOf, path
}
