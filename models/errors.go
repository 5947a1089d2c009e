// ABOUTME: Structured plan errors with stable kinds for API consumers
// ABOUTME: Callers match on Kind via errors.As instead of string probing

package models

import (
	"errors"
	"fmt"
)

// ErrorKind is a stable identifier for a planning failure. Kinds are part
// of the API contract and must not change between releases.
type ErrorKind string

const (
	// KindMalformedTopology means the topology document has no nodes section.
	KindMalformedTopology ErrorKind = "malformed_topology"
	// KindUnknownMachineType means a pricing lookup on an unrecognized id.
	KindUnknownMachineType ErrorKind = "unknown_machine_type"
	// KindNoFeasibleConfiguration means the optimizer found no viable
	// VM count/type within its search bound.
	KindNoFeasibleConfiguration ErrorKind = "no_feasible_configuration"
	// KindNoOptionsWithinBudget means budget filtering removed every
	// deployment option.
	KindNoOptionsWithinBudget ErrorKind = "no_options_within_budget"
)

// PlanError is a structured failure crossing the core boundary.
type PlanError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *PlanError) Error() string {
	return e.Message
}

// NewPlanError creates a PlanError with a formatted message.
func NewPlanError(kind ErrorKind, format string, args ...any) *PlanError {
	return &PlanError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the ErrorKind carried by err, or "" if err is not a
// PlanError.
func KindOf(err error) ErrorKind {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
