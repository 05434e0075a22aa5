package order

import (
	"fmt"

	"github.com/hmucanze19/algafood-api/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	CREATED ──┬──> CONFIRMED ──> DELIVERED
//	          │
//	          └──> CANCELLED
//
// DELIVERED and CANCELLED are final. A transition to the state the order is
// already in is illegal, like any other transition outside the diagram.
type Status string

const (
	// StatusCreated is the initial status assigned at construction.
	StatusCreated Status = "CREATED"

	// StatusConfirmed indicates the restaurant accepted the order.
	StatusConfirmed Status = "CONFIRMED"

	// StatusDelivered indicates the order reached the customer. Final.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled indicates the order was cancelled before confirmation
	// took effect. Final.
	StatusCancelled Status = "CANCELLED"
)

// transitions is the explicit transition table. A target absent from the
// current status's row is illegal; legality is decided here and nowhere else.
var transitions = map[Status]map[Status]bool{
	StatusCreated: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusDelivered: true,
	},
	StatusDelivered: {},
	StatusCancelled: {},
}

// TransitionOutcome classifies an attempted transition between two statuses.
type TransitionOutcome int

const (
	// TransitionAllowed means the target is reachable from the current status.
	TransitionAllowed TransitionOutcome = iota

	// TransitionAlreadyInTarget means current and target are the same status.
	TransitionAlreadyInTarget

	// TransitionIllegal means the target is a distinct, unreachable status.
	TransitionIllegal
)

// Validate checks that the Status is one of the four known statuses.
// Used when reconstructing orders from persistence or parsing API input.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the status name, e.g. "CONFIRMED".
func (s Status) String() string {
	return string(s)
}

// Outcome consults the transition table for an attempted change to target.
func (s Status) Outcome(target Status) TransitionOutcome {
	if s == target {
		return TransitionAlreadyInTarget
	}
	if transitions[s][target] {
		return TransitionAllowed
	}
	return TransitionIllegal
}

// IsFinal reports whether no transition leaves this status.
func (s Status) IsFinal() bool {
	return len(transitions[s]) == 0
}
