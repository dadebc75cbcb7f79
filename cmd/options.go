package cmd

import (
	"path"

	"github.com/seadog-run/seadog/pkg/dag"
	"github.com/seadog-run/seadog/pkg/pipeline"
)

// loadGraph loads the pipeline file and builds the task graph it describes.
func loadGraph(pipelinePath string) (*dag.Dag, *pipeline.Pipeline, error) {
	workingDir, err := getWorkingDir()
	if err != nil {
		return nil, nil, err
	}

	if !path.IsAbs(pipelinePath) {
		pipelinePath = path.Join(workingDir, pipelinePath)
	}

	p, err := pipeline.Load(pipelinePath)
	if err != nil {
		return nil, nil, err
	}

	graph, err := p.Build()
	if err != nil {
		return nil, nil, err
	}

	return graph, p, nil
}
