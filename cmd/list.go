package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seadog-run/seadog/internal/logger"
	"github.com/seadog-run/seadog/pkg/pipeline"
)

// ListOpts holds the options of the list command.
type ListOpts struct {
	// Root options
	Pipeline string `mapstructure:"pipeline"`

	// List specific options
	Output string `mapstructure:"output,omitempty"`
}

func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task execution order",
		Long:  `seadog list prints every task of the pipeline in the order it would execute, without running anything`,
		Run: func(cmd *cobra.Command, _ []string) {
			bindPFlagsSnakeCase(cmd.Flags())

			opts := ListOpts{}
			hydrateOptsFromViper(&opts)

			if err := doList(opts); err != nil {
				logger.Fatalf("List failed: %v", err)
			}
		},
	}

	cmd.Flags().StringP("output", "o", "",
		"Output format (console|graphviz)")

	return cmd
}

func doList(opts ListOpts) error {
	formatOpts, err := pipeline.ParseOutputOptions(opts.Output)
	if err != nil {
		return fmt.Errorf("error while parsing output options: %w", err)
	}

	graph, _, err := loadGraph(opts.Pipeline)
	if err != nil {
		return err
	}

	return pipeline.GenerateList(graph, formatOpts)
}
