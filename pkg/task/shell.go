package task

import (
	"fmt"

	"github.com/seadog-run/seadog/pkg/exec"
)

const defaultInterpreter = "python3"

// ShellTask runs a command line through the system shell.
type ShellTask struct {
	Command  string
	Executor exec.Executor
}

// NewShellTask creates a ShellTask running the given command line with /bin/sh.
func NewShellTask(command string) *ShellTask {
	return &ShellTask{
		Command:  command,
		Executor: exec.ShellExecutor{},
	}
}

func (t *ShellTask) Execute(string) error {
	if err := t.Executor.ExecuteStdout("/bin/sh", "-c", t.Command); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// PythonTask runs a snippet of inline code through a python interpreter.
type PythonTask struct {
	Code        string
	Interpreter string
	Executor    exec.Executor
}

// NewPythonTask creates a PythonTask running the given code with the default interpreter.
func NewPythonTask(code string) *PythonTask {
	return &PythonTask{
		Code:        code,
		Interpreter: defaultInterpreter,
		Executor:    exec.ShellExecutor{},
	}
}

func (t *PythonTask) Execute(string) error {
	interpreter := t.Interpreter
	if interpreter == "" {
		interpreter = defaultInterpreter
	}
	if err := t.Executor.ExecuteStdout(interpreter, "-c", t.Code); err != nil {
		return fmt.Errorf("%s failed: %w", interpreter, err)
	}
	return nil
}
