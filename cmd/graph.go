package cmd

import (
	"github.com/spf13/cobra"

	"github.com/seadog-run/seadog/internal/logger"
	"github.com/seadog-run/seadog/pkg/graphviz"
)

// GraphOpts holds the options of the graph command.
type GraphOpts struct {
	// Root options
	Pipeline string `mapstructure:"pipeline"`

	// Graph specific options
	OutputDir string `mapstructure:"output_dir"`
}

func graphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Create a visual representation of the task graph",
		Long: `Create a visual representation of the task graph using graphviz

Both the raw dot file and the rendered png are written to the output directory`,
		Run: func(cmd *cobra.Command, _ []string) {
			bindPFlagsSnakeCase(cmd.Flags())

			opts := GraphOpts{}
			hydrateOptsFromViper(&opts)

			graph, _, err := loadGraph(opts.Pipeline)
			if err != nil {
				logger.Fatalf("Graph failed: %v", err)
			}

			if err := graphviz.GenerateGraph(cmd.Context(), graph, opts.OutputDir); err != nil {
				logger.Fatalf("Graph failed: %v", err)
			}
		},
	}

	cmd.Flags().StringP("output-dir", "o", ".",
		"Directory where the .dot and .png files are written.")

	return cmd
}
