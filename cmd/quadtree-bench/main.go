// Command quadtree-bench times insertions and queries against a quadtree and
// runs YAML query scenarios.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "quadtree-bench",
		Short:        "Exercise an immutable bounding box quadtree",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	root.AddCommand(newBenchCmd(log), newScenarioCmd(log))
	return root
}
