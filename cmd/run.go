package cmd

import (
	"github.com/spf13/cobra"

	"github.com/seadog-run/seadog/internal/logger"
	"github.com/seadog-run/seadog/pkg/preflight"
	"github.com/seadog-run/seadog/pkg/scheduler"
)

// RunOpts holds the options of the run command.
type RunOpts struct {
	// Root options
	Pipeline string `mapstructure:"pipeline"`

	// Run specific options
	DryRun bool `mapstructure:"dry_run"`
}

func runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute every task of the pipeline",
		Long: `seadog run executes every task of the pipeline in dependency order,
stopping at the first failure`,
		Run: func(cmd *cobra.Command, _ []string) {
			bindPFlagsSnakeCase(cmd.Flags())

			opts := RunOpts{}
			hydrateOptsFromViper(&opts)

			if err := doRun(opts); err != nil {
				logger.Fatalf("Run failed: %v", err)
			}
		},
	}

	cmd.Flags().Bool("dry-run", false,
		"Resolve the execution order without executing any task.")

	return cmd
}

func doRun(opts RunOpts) error {
	graph, p, err := loadGraph(opts.Pipeline)
	if err != nil {
		return err
	}

	sched := scheduler.New(graph)

	if opts.DryRun {
		order, err := sched.ExecutionOrder()
		if err != nil {
			return err
		}

		logger.Infof("Dry run: %d task(s) would execute in order %v", len(order), order)

		return nil
	}

	preflight.RunPreflightChecks(p.Interpreters())

	logger.Infof("Executing pipeline %q (run %s)", p.Name, sched.RunID())

	if err := sched.Execute(); err != nil {
		return err
	}

	logger.Infof("Pipeline %q completed (run %s)", p.Name, sched.RunID())

	return nil
}
