package pipeline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/seadog-run/seadog/pkg/dag"
	"github.com/seadog-run/seadog/pkg/graphviz"
)

const (
	ConsoleFormat  = "console"
	GraphvizFormat = "graphviz"
)

type FormatOpts struct {
	Type string
}

// GenerateList prints the execution order of the graph in the requested format.
func GenerateList(graph *dag.Dag, opts FormatOpts) error {
	switch opts.Type {
	case ConsoleFormat:
		order, err := graph.TopologicalOrder()
		if err != nil {
			return err
		}
		renderConsoleOutput(graph, order)
	case GraphvizFormat:
		output := graphviz.GenerateRawOutput(graph)
		fmt.Println(output) //nolint:forbidigo
	}

	return nil
}

// ParseOutputOptions parse value of the "--output" flag and ensure they are valid.
// Currently, we only support the "console" and "graphviz" output.
func ParseOutputOptions(output string) (FormatOpts, error) {
	formatOpts := FormatOpts{}

	switch output {
	case "", ConsoleFormat:
		formatOpts.Type = ConsoleFormat
	case GraphvizFormat:
		formatOpts.Type = GraphvizFormat
	default:
		return formatOpts, fmt.Errorf("\"%s\" is not a valid output format", output)
	}

	return formatOpts, nil
}

// renderConsoleOutput displays the execution order in stdout as a nice table.
func renderConsoleOutput(graph *dag.Dag, order []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var data [][]string
	for position, id := range order {
		data = append(data, []string{
			strconv.Itoa(position + 1),
			id,
			strings.Join(graph.Dependencies(id), ", "),
		})
	}

	table.AppendBulk(data)

	table.SetHeader([]string{"#", "Task", "Depends On"})
	table.Render()
}
