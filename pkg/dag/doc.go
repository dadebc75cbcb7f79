// Package dag provides tools for creating and managing directed acyclic graphs (DAGs) of tasks.
//
// The main functionalities include:
// - Registering nodes with the task bound to each of them.
// - Declaring dependency edges between nodes.
// - Computing a deterministic, cycle-checked topological order.
//
// This package is useful for tasks that require dependency management and execution order control.
package dag
