package main

import (
	"github.com/spf13/cobra"
)

// solveFlags holds command-line overrides on top of the loaded config.
type solveFlags struct {
	configPath     string
	frontier       string
	storage        string
	noReverseStart bool
	overlay        bool
	logLevel       string
	metricsOut     string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tiepath",
		Short:         "Minimal-cost heading-aware maze search with tie-aware path coverage",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newSolveCmd())
	return rootCmd
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [maze file...]",
		Short: "Print \"<min cost> <optimal tiles>\" for each maze",
		Long: `Reads each maze ('#' wall, '.' open, 'S' start facing east, 'E' goal),
runs the search and prints the minimal cost followed by the number of distinct
cells on any minimal-cost path. Unreachable goals print "no path".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&f.frontier, "frontier", "", "frontier implementation: bucket or heap")
	flags.StringVar(&f.storage, "storage", "", "state record storage: dense or sparse")
	flags.BoolVar(&f.noReverseStart, "no-reverse-start", false, "disallow reversing out of the start cell")
	flags.BoolVar(&f.overlay, "overlay", false, "print the maze with optimal tiles marked 'O'")
	flags.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}
