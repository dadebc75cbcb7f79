// Package task defines the executable unit bound to every node of a graph.
//
// The main functionalities include:
// - The Task capability interface and its Func adapter.
// - ShellTask, running a command line through the system shell.
// - PythonTask, running inline code through a python interpreter.
package task
