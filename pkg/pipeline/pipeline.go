package pipeline

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seadog-run/seadog/pkg/dag"
	"github.com/seadog-run/seadog/pkg/exec"
	"github.com/seadog-run/seadog/pkg/strutil"
	"github.com/seadog-run/seadog/pkg/task"
)

// Task declares a single unit of work of a pipeline file.
// At most one of Shell and Python may be set; a task declaring neither is a no-op,
// useful as a synchronization point between branches of the graph.
type Task struct {
	ID        string   `yaml:"id"`
	Shell     string   `yaml:"shell,omitempty"`
	Python    string   `yaml:"python,omitempty"`
	Env       []string `yaml:"env,omitempty"` // KEY=VALUE pairs passed to the task's process.
	DependsOn []string `yaml:"depends_on,omitempty"`
}

// Pipeline is the declarative description of a task graph.
type Pipeline struct {
	Name  string `yaml:"name"`
	Tasks []Task `yaml:"tasks"`
}

// Load reads a pipeline definition from a file.
func Load(path string) (*Pipeline, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open pipeline file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Parse(file)
}

// Parse decodes a pipeline definition and validates it.
func Parse(reader io.Reader) (*Pipeline, error) {
	var pipeline Pipeline

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&pipeline); err != nil {
		return nil, fmt.Errorf("invalid pipeline definition: %w", err)
	}

	if err := pipeline.validate(); err != nil {
		return nil, err
	}

	return &pipeline, nil
}

func (p *Pipeline) validate() error {
	for index, t := range p.Tasks {
		if t.ID == "" {
			return fmt.Errorf("task at index %d has no id", index)
		}
		if t.Shell != "" && t.Python != "" {
			return fmt.Errorf("task %q declares both shell and python", t.ID)
		}
	}

	return nil
}

// Build constructs the executable graph described by the pipeline.
// Tasks are registered in file order, so independent tasks execute in the
// order they appear in the file. Duplicate identifiers and unknown
// dependencies surface as errors from the dag package.
func (p *Pipeline) Build() (*dag.Dag, error) {
	graph := dag.New()

	for _, t := range p.Tasks {
		if err := graph.AddNode(dag.NewNode(t.ID), t.executable()); err != nil {
			return nil, err
		}
	}

	for _, t := range p.Tasks {
		for _, dependency := range strutil.DedupeStrSlice(t.DependsOn) {
			if err := graph.AddEdge(dependency, t.ID); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}

// Interpreters returns the commands the pipeline's tasks are run with,
// deduplicated, so callers can check their availability upfront.
func (p *Pipeline) Interpreters() []string {
	var interpreters []string
	for _, t := range p.Tasks {
		switch {
		case t.Shell != "":
			interpreters = append(interpreters, "sh")
		case t.Python != "":
			interpreters = append(interpreters, "python3")
		}
	}

	return strutil.DedupeStrSlice(interpreters)
}

func (t Task) executable() task.Task {
	executor := exec.NewShellExecutor("", t.Env)

	switch {
	case t.Shell != "":
		shellTask := task.NewShellTask(t.Shell)
		shellTask.Executor = executor

		return shellTask
	case t.Python != "":
		pythonTask := task.NewPythonTask(t.Python)
		pythonTask.Executor = executor

		return pythonTask
	default:
		return task.NoOp()
	}
}
