// Package scheduler executes the tasks of a Dag sequentially, in topological
// order, stopping at the first failure.
package scheduler
