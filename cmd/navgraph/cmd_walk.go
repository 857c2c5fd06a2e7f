package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/walk"
)

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print a breadth- or depth-first traversal order",
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName, _ := cmd.Flags().GetString("mode")
			from, _ := cmd.Flags().GetString("from")
			all, _ := cmd.Flags().GetBool("all")

			mode, err := walk.ParseMode(modeName)
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd)
			if err != nil {
				return err
			}
			opts := []walk.Option{walk.WithContext(cmd.Context())}
			if all {
				opts = append(opts, walk.WithIncludeAll())
			}

			var ids []string
			if from == "" {
				seq, err := walk.FromRoot(g, mode, opts...)
				if err != nil {
					return err
				}
				for id := range seq {
					ids = append(ids, id)
				}
			} else {
				seq, err := walk.Vertices(g, mode, from, opts...)
				if err != nil {
					return err
				}
				for id := range seq {
					ids = append(ids, id)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, " "))
			return nil
		},
	}
	cmd.Flags().String("mode", "bfs", "Traversal mode: bfs or dfs")
	cmd.Flags().String("from", "", "Start vertex (default: graph root)")
	cmd.Flags().Bool("all", false, "Continue into every section")

	return cmd
}

func newTracesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traces",
		Short: "Print the full-coverage breadth-first edge trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for e := range walk.Traces(g) {
				fmt.Fprintf(out, "%s -> %s\t%g\n", e.From, e.To, e.Weight)
			}
			return nil
		},
	}
}
