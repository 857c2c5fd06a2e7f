package main

import (
	"fmt"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/sections"
)

func newSectionsCmd(logger *golog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List connected sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			trim, _ := cmd.Flags().GetBool("trim")
			g, err := loadGraph(cmd)
			if err != nil {
				return err
			}
			opts := []sections.Option{sections.WithLogger(logger)}
			if trim {
				opts = append(opts, sections.WithTrim())
			}
			res, err := sections.Detect(g, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, s := range res.Sections {
				fmt.Fprintf(out, "section %d: %d vertices (first: %s)\n", i+1, len(s.Members), s.Members[0])
			}
			if len(res.Removed) > 0 {
				fmt.Fprintf(out, "removed: %d vertices\n", len(res.Removed))
			}
			return nil
		},
	}
	cmd.Flags().Bool("trim", false, "Keep only the largest section")

	return cmd
}
