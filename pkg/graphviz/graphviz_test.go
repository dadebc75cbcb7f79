package graphviz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seadog-run/seadog/pkg/dag"
	"github.com/seadog-run/seadog/pkg/graphviz"
	"github.com/seadog-run/seadog/pkg/task"
)

func Test_GenerateRawOutput(t *testing.T) {
	t.Parallel()

	graph := dag.New()
	for _, id := range []string{"download", "process", "upload"} {
		require.NoError(t, graph.AddNode(dag.NewNode(id), task.NoOp()))
	}
	require.NoError(t, graph.AddEdge("download", "process"))
	require.NoError(t, graph.AddEdge("process", "upload"))

	output := graphviz.GenerateRawOutput(graph)

	assert.Contains(t, output, "digraph tasks {")
	assert.Contains(t, output, `"download";`)
	assert.Contains(t, output, `"download" -> "process" [dir=forward];`)
	assert.Contains(t, output, `"process" -> "upload" [dir=forward];`)
}

func Test_GenerateRawOutput_EmptyGraph(t *testing.T) {
	t.Parallel()

	output := graphviz.GenerateRawOutput(dag.New())

	assert.Contains(t, output, "digraph tasks {")
	assert.NotContains(t, output, "->")
}

func Test_GenerateRawOutput_NilGraph(t *testing.T) {
	t.Parallel()

	output := graphviz.GenerateRawOutput(nil)

	assert.Contains(t, output, "digraph tasks {")
}
