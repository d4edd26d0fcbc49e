/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"fmt"

	"github.com/NVIDIA/clix/pkg/command"
)

// Input error codes as constants. Input errors classify user mistakes in a
// concrete token vector; they abort the parse with no partial result.
const (
	ErrCodeUnknownOption     = "UNKNOWN_OPTION"
	ErrCodeFlagWithValue     = "FLAG_WITH_VALUE"
	ErrCodeMissingValue      = "MISSING_VALUE"
	ErrCodeIllegalRepetition = "ILLEGAL_REPETITION"
	ErrCodeUnknownSubcommand = "UNKNOWN_SUBCOMMAND"
	ErrCodeExcessiveArgument = "EXCESSIVE_ARGUMENT"
	ErrCodeMissingOption     = "MISSING_OPTION"
	ErrCodeMissingArgument   = "MISSING_ARGUMENT"
	ErrCodeMissingSubcommand = "MISSING_SUBCOMMAND"
	ErrCodeValidation        = "VALIDATION"
)

// ParseError reports an input or validation failure while walking a token
// vector against the model.
type ParseError struct {
	// Code classifies the failure (one of the ErrCode constants).
	Code string

	// Command is the command level at which the failure was detected. The
	// boundary layer renders this level's usage synopsis next to the error.
	Command *command.Command

	// Entry names the offending entry, when one is known.
	Entry string

	// Suggestion carries a nearest-match candidate for unknown names, or ""
	// when no known name is close enough.
	Suggestion string

	// Message is the human-readable description, with any suggestion
	// already appended.
	Message string

	// Err is the wrapped validator error for ErrCodeValidation failures.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string { return e.Message }

// Unwrap exposes the wrapped validator error to errors.Is and errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrf builds a ParseError with a formatted message.
func parseErrf(code string, cmd *command.Command, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    code,
		Command: cmd,
		Message: fmt.Sprintf(format, args...),
	}
}

// suggesting appends a did-you-mean clause and records the candidate.
func (e *ParseError) suggesting(candidate string) *ParseError {
	e.Suggestion = candidate
	e.Message = fmt.Sprintf("%s, did you mean %q?", e.Message, candidate)
	return e
}
