/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package header carries the Kind/APIVersion envelope of declarative clix
// resources, following Kubernetes-style resource conventions.
package header

import (
	"fmt"
	"strings"
)

var (
	// APIVersionDomain is the API group domain for clix resources.
	APIVersionDomain = "dgxc.io"

	// APIVersionV1 is the current schema version.
	APIVersionV1 = "v1"
)

// Header identifies the kind and schema version of a declarative resource.
type Header struct {
	// Kind is the resource type (e.g. "CommandManifest").
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion identifies the schema version for the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains free-form key-value pairs about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// For builds the canonical header for a kind, with APIVersion in the
// format "<kind>.dgxc.io/v1".
func For(kind string) Header {
	return Header{
		Kind:       kind,
		APIVersion: APIVersionFor(kind),
	}
}

// APIVersionFor returns the canonical APIVersion string for a kind.
func APIVersionFor(kind string) string {
	return fmt.Sprintf("%s.%s/%s", strings.ToLower(kind), APIVersionDomain, APIVersionV1)
}

// Expect verifies that the header names the given kind with a supported
// APIVersion. An empty APIVersion is tolerated for hand-written files.
func (h Header) Expect(kind string) error {
	if h.Kind != kind {
		return fmt.Errorf("unexpected kind %q, want %q", h.Kind, kind)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersionFor(kind) {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersionFor(kind))
	}
	return nil
}
