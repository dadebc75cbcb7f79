package dag

// Node represents a node of a graph, identified by a string unique within its owning Dag.
type Node struct {
	ID string
}

// NewNode creates a new instance of a Node.
func NewNode(id string) Node {
	return Node{ID: id}
}
