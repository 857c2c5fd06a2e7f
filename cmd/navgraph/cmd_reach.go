package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/dijkstra"
)

type reachEntry struct {
	ID   string  `json:"id"`
	Cost float64 `json:"cost"`
}

func newReachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List vertices affordable within a cost budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			budget, _ := cmd.Flags().GetFloat64("budget")
			jsonOut, _ := cmd.Flags().GetBool("json")

			g, err := loadGraph(cmd)
			if err != nil {
				return err
			}
			costs, err := dijkstra.Affordable(g, from, budget)
			if err != nil {
				return err
			}

			// graph order keeps the listing stable
			var entries []reachEntry
			for _, id := range g.Vertices() {
				if c, ok := costs[id]; ok {
					entries = append(entries, reachEntry{ID: id, Cost: c})
				}
			}
			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(entries)
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%g\n", e.ID, e.Cost)
			}
			return nil
		},
	}
	cmd.Flags().String("from", "", "Start vertex")
	cmd.Flags().Float64("budget", 0, "Maximum total cost")
	cmd.Flags().Bool("json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
