package core

import (
	"errors"
	"fmt"
)

var ErrInvalidAmount = errors.New("invalid amount")

// LoadError means the ledger file could not be read or parsed under any
// tried encoding/delimiter configuration. Fatal to the run.
type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "load: " + e.Reason
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

// ValidationError means a required column is missing or a column holds
// values that do not parse. Fatal to the run.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// PlanningError reports domain-invalid planner parameters, such as a
// savings-goal target date that is not in the future. It is returned as
// a value for the caller to branch on; the session continues.
type PlanningError struct {
	Reason string
}

func (e *PlanningError) Error() string {
	return "planning: " + e.Reason
}

// InputFormatError reports non-numeric (or otherwise malformed) text at
// an interactive prompt. The affected action is aborted and the menu is
// shown again.
type InputFormatError struct {
	Prompt string
	Value  string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid input %q for %s", e.Value, e.Prompt)
}
