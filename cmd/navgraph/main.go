// Command navgraph loads a YAML navigation graph and runs searches and
// connectivity queries against it.
package main

import (
	"fmt"
	"os"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/graphio"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logger := golog.New()
	logger.SetPrefix("[navgraph] ")

	rootCmd := &cobra.Command{
		Use:   "navgraph",
		Short: "Weighted graph pathfinding from the command line",
		Long: `navgraph loads a navigation graph from a YAML file and answers
pathfinding questions: cheapest routes, reachable areas within a
budget, connected sections and traversal orders.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			logger.SetLevel(level)
			logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("graph", "graph.yaml", "Path to the YAML graph file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, disable)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSearchCmd(logger),
		newSectionsCmd(logger),
		newReachCmd(),
		newWalkCmd(),
		newTracesCmd(),
		newGenerateCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "navgraph version %s\n", version)
		},
	}
}

// loadGraph reads the file named by the persistent --graph flag.
func loadGraph(cmd *cobra.Command) (*core.Graph[string], error) {
	path, _ := cmd.Flags().GetString("graph")
	g, err := graphio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	return g, nil
}
