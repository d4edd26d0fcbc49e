/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/clix/pkg/suggest"
)

// OneOf accepts only values drawn from a fixed whitelist. Rejections carry
// a nearest-match suggestion when one of the allowed values is close to the
// offending input.
type OneOf struct {
	allowed []string
}

// NewOneOf creates a whitelist validator over the given values.
func NewOneOf(allowed ...string) *OneOf {
	return &OneOf{allowed: allowed}
}

// Validate implements entry.Validator.
func (v *OneOf) Validate(name string, values []string) error {
	for _, value := range values {
		if v.contains(value) {
			continue
		}
		msg := fmt.Sprintf("%s: value %q must be one of: %s",
			name, value, strings.Join(v.allowed, ", "))
		if near, ok := suggest.Nearest(value, v.allowed); ok {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, near)
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func (v *OneOf) contains(value string) bool {
	for _, a := range v.allowed {
		if a == value {
			return true
		}
	}
	return false
}

// Allowed returns the whitelist, in declaration order.
func (v *OneOf) Allowed() []string { return v.allowed }

// Func adapts a whole-batch predicate to the validator interface. The
// function receives the entry name and its complete value sequence.
type Func func(name string, values []string) error

// Validate implements entry.Validator.
func (f Func) Validate(name string, values []string) error {
	return f(name, values)
}

// ForEach adapts a per-value predicate to the validator interface. The
// first rejected value aborts the chain.
func ForEach(fn func(value string) error) Func {
	return func(name string, values []string) error {
		for _, value := range values {
			if err := fn(value); err != nil {
				return fmt.Errorf("%s: value %q: %w", name, value, err)
			}
		}
		return nil
	}
}
