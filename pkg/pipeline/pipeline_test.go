package pipeline_test

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seadog-run/seadog/pkg/dag"
	"github.com/seadog-run/seadog/pkg/pipeline"
)

const validPipeline = `
name: nightly-etl
tasks:
  - id: download
    shell: echo downloading
  - id: process
    python: print("processing")
    depends_on: [download]
  - id: upload
    shell: echo uploading
    depends_on: [process]
`

func Test_Parse(t *testing.T) {
	t.Parallel()

	p, err := pipeline.Parse(strings.NewReader(validPipeline))

	require.NoError(t, err)
	assert.Equal(t, "nightly-etl", p.Name)
	require.Len(t, p.Tasks, 3)
	assert.Equal(t, "download", p.Tasks[0].ID)
	assert.Equal(t, []string{"process"}, p.Tasks[2].DependsOn)
}

func Test_Parse_MissingID(t *testing.T) {
	t.Parallel()

	_, err := pipeline.Parse(strings.NewReader(`
tasks:
  - shell: echo oops
`))

	require.Error(t, err)
	assert.ErrorContains(t, err, "has no id")
}

func Test_Parse_ShellAndPython(t *testing.T) {
	t.Parallel()

	_, err := pipeline.Parse(strings.NewReader(`
tasks:
  - id: confused
    shell: echo hello
    python: print("hello")
`))

	require.Error(t, err)
	assert.ErrorContains(t, err, "confused")
}

func Test_Parse_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := pipeline.Parse(strings.NewReader(`
tasks:
  - id: download
    comand: echo typo
`))

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid pipeline definition")
}

func Test_Build(t *testing.T) {
	t.Parallel()

	p, err := pipeline.Parse(strings.NewReader(validPipeline))
	require.NoError(t, err)

	graph, err := p.Build()
	require.NoError(t, err)

	order, err := graph.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"download", "process", "upload"}, order)
}

func Test_Build_DuplicateTask(t *testing.T) {
	t.Parallel()

	p, err := pipeline.Parse(strings.NewReader(`
tasks:
  - id: download
  - id: download
`))
	require.NoError(t, err)

	_, err = p.Build()

	require.ErrorIs(t, err, dag.ErrDuplicateNode)
}

func Test_Build_UnknownDependency(t *testing.T) {
	t.Parallel()

	p, err := pipeline.Parse(strings.NewReader(`
tasks:
  - id: process
    depends_on: [download]
`))
	require.NoError(t, err)

	_, err = p.Build()

	require.ErrorIs(t, err, dag.ErrUnknownNode)
	assert.ErrorContains(t, err, "download")
}

func Test_Build_DedupesDependencies(t *testing.T) {
	t.Parallel()

	p, err := pipeline.Parse(strings.NewReader(`
tasks:
  - id: download
  - id: process
    depends_on: [download, download]
`))
	require.NoError(t, err)

	graph, err := p.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"download"}, graph.Dependencies("process"))

	order, err := graph.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"download", "process"}, order)
}

func Test_Interpreters(t *testing.T) {
	t.Parallel()

	p, err := pipeline.Parse(strings.NewReader(`
tasks:
  - id: download
    shell: echo downloading
  - id: process
    python: print("processing")
  - id: upload
    shell: echo uploading
  - id: done
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"sh", "python3"}, p.Interpreters())
}

func Test_Load(t *testing.T) {
	t.Parallel()

	pipelineFile := path.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(pipelineFile, []byte(validPipeline), 0o600))

	p, err := pipeline.Load(pipelineFile)

	require.NoError(t, err)
	assert.Equal(t, "nightly-etl", p.Name)
}

func Test_Load_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := pipeline.Load(path.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not open pipeline file")
}
