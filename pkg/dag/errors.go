package dag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateNode is returned when registering a node whose identifier is already taken.
	ErrDuplicateNode = errors.New("node already exists")

	// ErrUnknownNode is returned when an edge references a node that was never registered.
	ErrUnknownNode = errors.New("unknown node")

	// ErrCycle is returned when the graph cannot be topologically ordered.
	ErrCycle = errors.New("cycle detected")
)

// CycleError reports that the graph contains at least one cycle.
// Remaining holds the identifiers that could not be ordered, in insertion order.
// It includes every node of the cycle(s) plus any node depending on them.
type CycleError struct {
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: nodes [%s] could not be ordered", strings.Join(e.Remaining, ", "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
