package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/sections"
)

type routeResult struct {
	To    string   `json:"to,omitempty"`
	Path  []string `json:"path"`
	Cost  float64  `json:"cost"`
	Error string   `json:"error,omitempty"`
}

func newSearchCmd(logger *golog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the cheapest route from one vertex to one or more goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			targets, _ := cmd.Flags().GetStringArray("to")
			trim, _ := cmd.Flags().GetBool("trim")
			maxCost, _ := cmd.Flags().GetFloat64("max-cost")
			jsonOut, _ := cmd.Flags().GetBool("json")

			g, err := loadGraph(cmd)
			if err != nil {
				return err
			}
			detectOpts := []sections.Option{sections.WithLogger(logger)}
			if trim {
				detectOpts = append(detectOpts, sections.WithTrim())
			}
			if _, err = sections.Detect(g, detectOpts...); err != nil {
				return err
			}

			opts := []astar.Option[string]{
				astar.WithLogger[string](logger),
				astar.WithContext[string](cmd.Context()),
			}
			if maxCost > 0 {
				opts = append(opts, astar.WithMaxCost[string](maxCost))
			}
			out := cmd.OutOrStdout()
			if len(targets) == 1 {
				p, err := astar.Search(g, from, targets[0], opts...)
				if err != nil {
					return err
				}
				route := slices.Collect(p.All())
				if jsonOut {
					return json.NewEncoder(out).Encode(routeResult{Path: route, Cost: p.Cost()})
				}
				fmt.Fprintf(out, "path: %s\ncost: %g\n", strings.Join(route, " -> "), p.Cost())
				return nil
			}

			queries := make([]astar.Query[string], len(targets))
			for i, to := range targets {
				queries[i] = astar.Query[string]{Start: from, End: to}
			}
			workers, _ := cmd.Flags().GetInt("workers")
			outcomes, err := astar.SearchMany(cmd.Context(), g, queries, workers, opts...)
			if err != nil {
				return err
			}

			results := make([]routeResult, 0, len(outcomes))
			var errs []error
			for _, o := range outcomes {
				r := routeResult{To: o.Query.End}
				if o.Err != nil {
					r.Error = o.Err.Error()
					errs = append(errs, fmt.Errorf("%s: %w", o.Query.End, o.Err))
				} else {
					r.Path, r.Cost = slices.Collect(o.Path.All()), o.Path.Cost()
				}
				results = append(results, r)
			}
			if jsonOut {
				if err := json.NewEncoder(out).Encode(results); err != nil {
					return err
				}
				return errors.Join(errs...)
			}
			for _, r := range results {
				if r.Error != "" {
					fmt.Fprintf(out, "%s: %s\n", r.To, r.Error)
					continue
				}
				fmt.Fprintf(out, "%s: %s (cost %g)\n", r.To, strings.Join(r.Path, " -> "), r.Cost)
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().String("from", "", "Start vertex")
	cmd.Flags().StringArray("to", nil, "Goal vertex; repeat the flag for several goals")
	cmd.Flags().Int("workers", 0, "Concurrent searches for several goals (0 = GOMAXPROCS)")
	cmd.Flags().Bool("trim", false, "Drop all but the largest section before searching")
	cmd.Flags().Float64("max-cost", 0, "Give up beyond this cost (0 = unlimited)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
