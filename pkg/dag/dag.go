package dag

import (
	"fmt"

	"github.com/seadog-run/seadog/pkg/task"
)

// Dag represents a directed acyclic graph of tasks.
// The zero value is an empty graph, ready to use. A Dag is not safe for
// concurrent use; build it fully, then hand it over to a scheduler.
type Dag struct {
	order    []string // Node identifiers in insertion order.
	edges    map[string][]string
	tasks    map[string]task.Task
	inDegree map[string]int
}

// New creates an empty Dag.
func New() *Dag {
	d := &Dag{}
	d.init()

	return d
}

func (d *Dag) init() {
	if d.tasks == nil {
		d.edges = make(map[string][]string)
		d.tasks = make(map[string]task.Task)
		d.inDegree = make(map[string]int)
	}
}

// AddNode registers a node and binds it to the given task.
// It returns ErrDuplicateNode when the identifier is already registered,
// leaving the graph unchanged.
func (d *Dag) AddNode(node Node, t task.Task) error {
	d.init()

	if _, exists := d.tasks[node.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, node.ID)
	}

	d.order = append(d.order, node.ID)
	d.tasks[node.ID] = t
	d.inDegree[node.ID] = 0

	return nil
}

// AddEdge declares that the node identified by from must execute before the node identified by to.
// Both endpoints must already be registered; otherwise ErrUnknownNode is returned,
// naming the offending identifier, and the graph is left unchanged.
// Cycles are not checked here, they are detected when a topological order is requested.
func (d *Dag) AddEdge(from, to string) error {
	d.init()

	if _, exists := d.tasks[from]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, exists := d.tasks[to]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	d.edges[from] = append(d.edges[from], to)
	d.inDegree[to]++

	return nil
}

// TopologicalOrder computes an execution order satisfying every declared
// dependency, using Kahn's algorithm. Ties between simultaneously-ready nodes
// are broken by insertion order, so the result is stable for a given
// construction sequence. An empty graph yields an empty order.
// It returns a CycleError listing the unordered nodes when the graph contains
// at least one cycle. The graph itself is never modified.
func (d *Dag) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(d.inDegree))
	for id, degree := range d.inDegree {
		inDegree[id] = degree
	}

	queue := make([]string, 0, len(d.order))
	for _, id := range d.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	sorted := make([]string, 0, len(d.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		sorted = append(sorted, id)

		for _, dependent := range d.edges[id] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	// Any node left with a positive in-degree sits on a cycle, or depends on one.
	if len(sorted) != len(d.order) {
		remaining := make([]string, 0, len(d.order)-len(sorted))
		for _, id := range d.order {
			if inDegree[id] > 0 {
				remaining = append(remaining, id)
			}
		}

		return nil, &CycleError{Remaining: remaining}
	}

	return sorted, nil
}

// Task returns the task bound to the given node identifier.
func (d *Dag) Task(id string) (task.Task, bool) {
	t, ok := d.tasks[id]

	return t, ok
}

// Nodes returns the registered node identifiers, in insertion order.
func (d *Dag) Nodes() []string {
	nodes := make([]string, len(d.order))
	copy(nodes, d.order)

	return nodes
}

// Dependents returns the identifiers of the nodes that depend on the given node,
// in the order their edges were declared.
func (d *Dag) Dependents(id string) []string {
	dependents := make([]string, len(d.edges[id]))
	copy(dependents, d.edges[id])

	return dependents
}

// Dependencies returns the identifiers of the nodes the given node depends on,
// in insertion order.
func (d *Dag) Dependencies(id string) []string {
	var dependencies []string
	for _, from := range d.order {
		for _, to := range d.edges[from] {
			if to == id {
				dependencies = append(dependencies, from)

				break
			}
		}
	}

	return dependencies
}

// Len returns the number of registered nodes.
func (d *Dag) Len() int {
	return len(d.order)
}
