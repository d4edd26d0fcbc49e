/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package command

import "fmt"

// Model error codes as constants. Model errors signal embedder mistakes in
// the declared command surface, never user input mistakes, and abort model
// construction immediately.
const (
	ErrCodeInvalidName         = "INVALID_NAME"
	ErrCodeDuplicateName       = "DUPLICATE_NAME"
	ErrCodeMissingForm         = "MISSING_FORM"
	ErrCodeInvalidForm         = "INVALID_FORM"
	ErrCodeDuplicateForm       = "DUPLICATE_FORM"
	ErrCodeRequiredWithDefault = "REQUIRED_WITH_DEFAULT"
	ErrCodeArgumentOrder       = "ARGUMENT_ORDER"
	ErrCodeSubcommandConflict  = "SUBCOMMAND_CONFLICT"
	ErrCodeUnknownDefault      = "UNKNOWN_DEFAULT_COMMAND"
	ErrCodeFlagMisuse          = "FLAG_MISUSE"
)

// ModelError reports a structural violation raised while building the
// command model.
type ModelError struct {
	// Code classifies the violation (one of the ErrCode constants).
	Code string

	// Command names the command whose Add call failed.
	Command string

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ModelError) Error() string { return e.Message }

// modelErrf builds a ModelError with a formatted message.
func modelErrf(code, command, format string, args ...any) *ModelError {
	return &ModelError{
		Code:    code,
		Command: command,
		Message: fmt.Sprintf(format, args...),
	}
}
