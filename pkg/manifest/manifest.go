/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/entry"
	"github.com/NVIDIA/clix/pkg/header"
	"github.com/NVIDIA/clix/pkg/validator"
)

// Kind is the resource kind accepted by the loader.
const Kind = "CommandManifest"

// document is the top-level YAML shape.
type document struct {
	header.Header `yaml:",inline"`

	Spec programSpec `yaml:"spec"`
}

type programSpec struct {
	commandSpec `yaml:",inline"`

	Version string   `yaml:"version,omitempty"`
	Authors []string `yaml:"authors,omitempty"`
	Binary  string   `yaml:"binary,omitempty"`
}

type commandSpec struct {
	Name           string         `yaml:"name"`
	Summary        string         `yaml:"summary,omitempty"`
	Topic          string         `yaml:"topic,omitempty"`
	Flags          []flagSpec     `yaml:"flags,omitempty"`
	Options        []optionSpec   `yaml:"options,omitempty"`
	Arguments      []argumentSpec `yaml:"arguments,omitempty"`
	Commands       []commandSpec  `yaml:"commands,omitempty"`
	DefaultCommand string         `yaml:"defaultCommand,omitempty"`
}

type flagSpec struct {
	Name        string `yaml:"name"`
	Short       string `yaml:"short,omitempty"`
	Long        string `yaml:"long,omitempty"`
	Description string `yaml:"description,omitempty"`
	Repeating   bool   `yaml:"repeating,omitempty"`

	// Flags are presence-only. These fields exist so that declaring them
	// fails loudly as a model error instead of being silently dropped.
	Required *bool    `yaml:"required,omitempty"`
	Default  []string `yaml:"default,omitempty"`
	OneOf    []string `yaml:"oneOf,omitempty"`
}

type optionSpec struct {
	Name        string   `yaml:"name"`
	Short       string   `yaml:"short,omitempty"`
	Long        string   `yaml:"long,omitempty"`
	Description string   `yaml:"description,omitempty"`
	ValueTag    string   `yaml:"valueTag,omitempty"`
	Repeating   bool     `yaml:"repeating,omitempty"`
	Required    bool     `yaml:"required,omitempty"`
	Default     []string `yaml:"default,omitempty"`
	OneOf       []string `yaml:"oneOf,omitempty"`
	Path        string   `yaml:"path,omitempty"`
}

type argumentSpec struct {
	Name        string   `yaml:"name"`
	Tag         string   `yaml:"tag,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Repeating   bool     `yaml:"repeating,omitempty"`
	Required    *bool    `yaml:"required,omitempty"`
	Default     []string `yaml:"default,omitempty"`
	OneOf       []string `yaml:"oneOf,omitempty"`
	Path        string   `yaml:"path,omitempty"`
}

// LoadFile reads and loads a command manifest from disk.
func LoadFile(path string) (*command.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Load(data)
}

// Load builds a program model from a YAML command manifest. The model is
// constructed through the same Add calls as programmatic construction, so
// every structural rule applies unchanged and violations surface as
// *command.ModelError values.
func Load(data []byte) (*command.Command, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal command manifest: %w", err)
	}
	if err := doc.Expect(Kind); err != nil {
		return nil, fmt.Errorf("invalid command manifest: %w", err)
	}

	spec := doc.Spec
	var opts []command.ProgramOption
	if spec.Version != "" {
		opts = append(opts, command.WithVersion(spec.Version))
	}
	if spec.Summary != "" {
		opts = append(opts, command.WithSummary(spec.Summary))
	}
	if len(spec.Authors) > 0 {
		opts = append(opts, command.WithAuthors(spec.Authors...))
	}
	if spec.Binary != "" {
		opts = append(opts, command.WithBinaryName(spec.Binary))
	}

	prog := command.NewProgram(spec.Name, opts...)
	if err := populate(prog, spec.commandSpec); err != nil {
		return nil, err
	}

	slog.Debug("command manifest loaded",
		"program", spec.Name,
		"commands", len(spec.Commands))

	return prog, nil
}

// populate fills one command level and recurses into nested commands.
func populate(cmd *command.Command, spec commandSpec) error {
	for _, fs := range spec.Flags {
		f, err := buildFlag(cmd, fs)
		if err != nil {
			return err
		}
		if err := cmd.AddFlag(f); err != nil {
			return err
		}
	}
	for _, opt := range spec.Options {
		o, err := buildOption(cmd, opt)
		if err != nil {
			return err
		}
		if err := cmd.AddOption(o); err != nil {
			return err
		}
	}
	for _, as := range spec.Arguments {
		a, err := buildArgument(cmd, as)
		if err != nil {
			return err
		}
		if err := cmd.AddArgument(a); err != nil {
			return err
		}
	}
	for _, cs := range spec.Commands {
		sub := command.New(cs.Name, cs.Summary)
		if err := populate(sub, cs); err != nil {
			return err
		}
		cmd.Topic(cs.Topic)
		if err := cmd.AddCommand(sub); err != nil {
			return err
		}
	}
	if spec.DefaultCommand != "" {
		if err := cmd.DefaultCommand(spec.DefaultCommand); err != nil {
			return err
		}
	}
	return nil
}

func buildFlag(cmd *command.Command, spec flagSpec) (*entry.Flag, error) {
	if spec.Required != nil || len(spec.Default) > 0 || len(spec.OneOf) > 0 {
		return nil, &command.ModelError{
			Code:    command.ErrCodeFlagMisuse,
			Command: cmd.Name(),
			Message: fmt.Sprintf("flag %q is presence-only and cannot declare required, default or oneOf", spec.Name),
		}
	}
	return entry.NewFlag(spec.Name).
		Short(spec.Short).
		Long(spec.Long).
		Describe(spec.Description).
		Repeating(spec.Repeating), nil
}

func buildOption(cmd *command.Command, spec optionSpec) (*entry.Option, error) {
	o := entry.NewOption(spec.Name).
		Short(spec.Short).
		Long(spec.Long).
		Describe(spec.Description).
		Repeating(spec.Repeating).
		Required(spec.Required)
	if spec.ValueTag != "" {
		o.ValueTag(spec.ValueTag)
	}
	if len(spec.Default) > 0 {
		// Required stays observable for the add-time conflict check, so
		// Default must not be applied when both are declared.
		if spec.Required {
			return nil, &command.ModelError{
				Code:    command.ErrCodeRequiredWithDefault,
				Command: cmd.Name(),
				Message: fmt.Sprintf("option %q cannot be required and carry a default value", spec.Name),
			}
		}
		o.Default(spec.Default...)
	}
	if len(spec.OneOf) > 0 {
		o.Validate(validator.NewOneOf(spec.OneOf...))
	}
	if spec.Path != "" {
		v, err := pathValidator(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", spec.Name, err)
		}
		o.Validate(v)
	}
	return o, nil
}

func buildArgument(cmd *command.Command, spec argumentSpec) (*entry.Argument, error) {
	a := entry.NewArgument(spec.Name).
		Describe(spec.Description).
		Repeating(spec.Repeating)
	if spec.Tag != "" {
		a.SetTag(spec.Tag)
	}
	if spec.Required != nil {
		a.Required(*spec.Required)
	}
	if len(spec.Default) > 0 {
		if spec.Required != nil && *spec.Required {
			return nil, &command.ModelError{
				Code:    command.ErrCodeRequiredWithDefault,
				Command: cmd.Name(),
				Message: fmt.Sprintf("argument %q cannot be required and carry a default value", spec.Name),
			}
		}
		a.Default(spec.Default...)
	}
	if len(spec.OneOf) > 0 {
		a.Validate(validator.NewOneOf(spec.OneOf...))
	}
	if spec.Path != "" {
		v, err := pathValidator(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", spec.Name, err)
		}
		a.Validate(v)
	}
	return a, nil
}

func pathValidator(mode string) (entry.Validator, error) {
	switch mode {
	case "exists":
		return validator.ExistingPath(), nil
	case "file":
		return validator.ExistingFile(), nil
	case "dir":
		return validator.ExistingDir(), nil
	default:
		return nil, fmt.Errorf("unknown path constraint %q, want exists, file or dir", mode)
	}
}
