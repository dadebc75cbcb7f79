package graphviz

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/seadog-run/seadog/pkg/dag"
)

const (
	// graphDot is the name of the file containing the raw graphviz dot language representation of the task graph.
	graphDot = "seadog.dot"

	// graphPng is the final file inside we put the rendered task graph.
	graphPng = "seadog.png"
)

// GenerateGraph generates a graphviz representation (png) of the dag.Dag in the given directory.
func GenerateGraph(ctx context.Context, graph *dag.Dag, outputDir string) error {
	rawGraphvizOutput := GenerateRawOutput(graph)

	graphvizFile := path.Join(outputDir, graphDot)
	pngFile := path.Join(outputDir, graphPng)

	err := os.WriteFile(graphvizFile, []byte(rawGraphvizOutput), 0o644)
	if err != nil {
		return err
	}

	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz: %w", err)
	}

	defer func() {
		_ = g.Close()
	}()

	parsed, err := graphviz.ParseBytes([]byte(rawGraphvizOutput))
	if err != nil {
		return fmt.Errorf("failed to parse graphviz: %w", err)
	}

	defer func() {
		_ = parsed.Close()
	}()

	err = g.RenderFilename(ctx, parsed, graphviz.PNG, pngFile)
	if err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	return nil
}

// GenerateRawOutput generates the raw graphviz dot language from the given dag.Dag.
func GenerateRawOutput(graph *dag.Dag) string {
	rawGraphvizDotLang := []string{
		"digraph tasks {\n",
		"  rankdir = \"LR\";\n",
		"  node[fontsize=10, shape=cds, height=0.4];\n",
		"  edge[fontsize=10, arrowhead=vee];\n",
		"\n",
	}

	if graph != nil {
		for _, id := range graph.Nodes() {
			rawGraphvizDotLang = append(rawGraphvizDotLang, fmt.Sprintf(
				"  \"%s\";\n",
				id,
			))

			for _, dependent := range graph.Dependents(id) {
				rawGraphvizDotLang = append(rawGraphvizDotLang, fmt.Sprintf(
					"  \"%s\" -> \"%s\" [dir=forward];\n",
					id,
					dependent,
				))
			}
		}
	}

	rawGraphvizDotLang = append(rawGraphvizDotLang, "}\n")

	return strings.Join(rawGraphvizDotLang, "")
}
