package scheduler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seadog-run/seadog/pkg/dag"
	"github.com/seadog-run/seadog/pkg/scheduler"
	"github.com/seadog-run/seadog/pkg/task"
)

// recorder builds tasks that append the identifier they were invoked with.
type recorder struct {
	executed []string
}

func (r *recorder) task() task.Task {
	return task.Func(func(id string) error {
		r.executed = append(r.executed, id)

		return nil
	})
}

func (r *recorder) failingTask(err error) task.Task {
	return task.Func(func(id string) error {
		r.executed = append(r.executed, id)

		return err
	})
}

func Test_Execute_RunsTasksInDependencyOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	graph := dag.New()
	for _, id := range []string{"download", "process", "upload"} {
		require.NoError(t, graph.AddNode(dag.NewNode(id), rec.task()))
	}
	require.NoError(t, graph.AddEdge("download", "process"))
	require.NoError(t, graph.AddEdge("process", "upload"))

	sched := scheduler.New(graph)

	require.NoError(t, sched.Execute())
	assert.Equal(t, []string{"download", "process", "upload"}, rec.executed)
}

func Test_Execute_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	boom := errors.New("x")

	graph := dag.New()
	require.NoError(t, graph.AddNode(dag.NewNode("a"), rec.task()))
	require.NoError(t, graph.AddNode(dag.NewNode("b"), rec.failingTask(boom)))
	require.NoError(t, graph.AddNode(dag.NewNode("c"), rec.task()))
	require.NoError(t, graph.AddEdge("a", "b"))
	require.NoError(t, graph.AddEdge("b", "c"))

	err := scheduler.New(graph).Execute()

	// "c" never ran.
	assert.Equal(t, []string{"a", "b"}, rec.executed)

	require.ErrorIs(t, err, boom)

	var taskErr *scheduler.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, "b", taskErr.NodeID)
	assert.ErrorContains(t, err, `task "b" failed`)
	assert.ErrorContains(t, err, "x")
}

func Test_Execute_CycleRunsNothing(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	graph := dag.New()
	require.NoError(t, graph.AddNode(dag.NewNode("a"), rec.task()))
	require.NoError(t, graph.AddNode(dag.NewNode("b"), rec.task()))
	require.NoError(t, graph.AddEdge("a", "b"))
	require.NoError(t, graph.AddEdge("b", "a"))

	err := scheduler.New(graph).Execute()

	require.ErrorIs(t, err, dag.ErrCycle)
	assert.Empty(t, rec.executed)
}

func Test_Execute_EmptyGraph(t *testing.T) {
	t.Parallel()

	require.NoError(t, scheduler.New(dag.New()).Execute())
}

func Test_Execute_IndependentNodesInsertionOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	graph := dag.New()
	require.NoError(t, graph.AddNode(dag.NewNode("b"), rec.task()))
	require.NoError(t, graph.AddNode(dag.NewNode("a"), rec.task()))

	sched := scheduler.New(graph)

	require.NoError(t, sched.Execute())
	assert.Equal(t, []string{"b", "a"}, rec.executed)

	// Re-running the same graph yields the same order, nothing was mutated.
	require.NoError(t, sched.Execute())
	assert.Equal(t, []string{"b", "a", "b", "a"}, rec.executed)
}

func Test_Execute_PassesNodeIDToTask(t *testing.T) {
	t.Parallel()

	var received string

	graph := dag.New()
	require.NoError(t, graph.AddNode(dag.NewNode("download"), task.Func(func(id string) error {
		received = id

		return nil
	})))

	require.NoError(t, scheduler.New(graph).Execute())
	assert.Equal(t, "download", received)
}

func Test_ExecutionOrder(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	graph := dag.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, graph.AddNode(dag.NewNode(id), rec.task()))
	}
	require.NoError(t, graph.AddEdge("a", "b"))
	require.NoError(t, graph.AddEdge("b", "c"))

	order, err := scheduler.New(graph).ExecutionOrder()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)

	// ExecutionOrder never runs tasks.
	assert.Empty(t, rec.executed)
}

func Test_RunID(t *testing.T) {
	t.Parallel()

	first := scheduler.New(dag.New())
	second := scheduler.New(dag.New())

	assert.NotEmpty(t, first.RunID())
	assert.NotEqual(t, first.RunID(), second.RunID())
}
