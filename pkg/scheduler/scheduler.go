package scheduler

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wolfeidau/humanhash"

	"github.com/seadog-run/seadog/internal/logger"
	"github.com/seadog-run/seadog/pkg/dag"
)

// TaskError reports the failure of a single task, identifying the node it was bound to.
type TaskError struct {
	NodeID string
	Err    error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %q failed: %v", e.NodeID, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Scheduler drives the sequential execution of a finalized Dag.
// It owns the graph for the duration of the run; the graph must not be
// mutated once handed over.
type Scheduler struct {
	graph *dag.Dag
	runID string
}

// New creates a Scheduler around the given Dag. No validation is performed
// at construction time; cycles surface when Execute is called.
func New(graph *dag.Dag) *Scheduler {
	id := uuid.New()
	runID, err := humanhash.Humanize(id[:], 2)
	if err != nil {
		runID = id.String()
	}

	return &Scheduler{
		graph: graph,
		runID: runID,
	}
}

// RunID returns the human-readable identifier correlating the log lines of this scheduler.
func (s *Scheduler) RunID() string {
	return s.runID
}

// ExecutionOrder returns the order in which tasks would run, without running anything.
func (s *Scheduler) ExecutionOrder() ([]string, error) {
	return s.graph.TopologicalOrder()
}

// Execute runs every task of the graph in topological order, passing each
// task the identifier of its node. Execution stops at the first failure and
// the error identifies the failed node. When the graph contains a cycle the
// ordering error is surfaced unchanged and no task runs.
func (s *Scheduler) Execute() error {
	order, err := s.graph.TopologicalOrder()
	if err != nil {
		return err
	}

	for position, id := range order {
		t, ok := s.graph.Task(id)
		if !ok || t == nil {
			continue
		}

		logger.Debugf("[%s] executing task %q (%d/%d)", s.runID, id, position+1, len(order))

		if err := t.Execute(id); err != nil {
			return &TaskError{NodeID: id, Err: err}
		}
	}

	logger.Debugf("[%s] %d task(s) completed", s.runID, len(order))

	return nil
}
