package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	quadtree "github.com/rob05c/bbquadtree"
	"github.com/rob05c/bbquadtree/internal/scenario"
)

func newScenarioCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario <file.yaml>",
		Short: "Build a tree from a scenario file and print its query results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			tree, results, err := s.Run()
			if err != nil {
				return err
			}
			stats := quadtree.StatsOf(tree)
			log.WithFields(logrus.Fields{
				"file":   args[0],
				"items":  len(s.Items),
				"slots":  stats.Slots,
				"leaves": stats.Leaves,
				"depth":  stats.Depth,
			}).Info("built tree")
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s (%s): %s\n", r.Query, r.Mode, strings.Join(r.Names(), ", "))
			}
			return nil
		},
	}
}
