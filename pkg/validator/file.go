/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"os"
)

// pathMode selects which filesystem shape a path validator accepts.
type pathMode int

const (
	pathAny pathMode = iota
	pathFile
	pathDir
)

// Path validates that each value names an existing filesystem path,
// optionally constrained to regular files or directories.
type Path struct {
	mode pathMode
}

// ExistingPath accepts any path that exists.
func ExistingPath() *Path { return &Path{mode: pathAny} }

// ExistingFile accepts only paths naming an existing regular file.
func ExistingFile() *Path { return &Path{mode: pathFile} }

// ExistingDir accepts only paths naming an existing directory.
func ExistingDir() *Path { return &Path{mode: pathDir} }

// Constraint names the accepted filesystem shape: "exists", "file" or
// "dir". The names match the manifest schema.
func (v *Path) Constraint() string {
	switch v.mode {
	case pathFile:
		return "file"
	case pathDir:
		return "dir"
	default:
		return "exists"
	}
}

// Validate implements entry.Validator.
func (v *Path) Validate(name string, values []string) error {
	for _, value := range values {
		info, err := os.Stat(value)
		if err != nil {
			return fmt.Errorf("%s: path %q does not exist", name, value)
		}
		switch v.mode {
		case pathFile:
			if info.IsDir() {
				return fmt.Errorf("%s: path %q is a directory, expected a file", name, value)
			}
		case pathDir:
			if !info.IsDir() {
				return fmt.Errorf("%s: path %q is not a directory", name, value)
			}
		}
	}
	return nil
}
