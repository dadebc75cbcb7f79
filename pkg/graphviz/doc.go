// Package graphviz provides tools and utilities for generating Graphviz visualizations of a task graph.
//
// The main functionalities include:
// - Exporting a graph to the DOT language.
// - Rendering a graph to a PNG file.
package graphviz
