package task

// Task is a single executable unit bound to a node of the graph.
// Execute receives the identifier of the node it is running for.
type Task interface {
	Execute(id string) error
}

// Func is an adapter to allow the use of ordinary functions as tasks.
type Func func(id string) error

// Execute calls f(id).
func (f Func) Execute(id string) error {
	return f(id)
}

// NoOp returns a task that does nothing and always succeeds.
func NoOp() Task {
	return Func(func(string) error {
		return nil
	})
}
