// Command latticepath drives the lattice reconfiguration path planner
// (spec.md §6.4): it loads an initial (and optionally a final) scenario
// file, a folder of move templates, searches for a reconfiguration path,
// and optionally exports it as a .scen file or a run analysis report.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/latticepath/planner"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := planner.DefaultFlags()

	root := &cobra.Command{
		Use:           "latticepath",
		Short:         "Plan a modular-robot lattice reconfiguration path",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, flags)
		},
	}

	f := root.Flags()
	f.StringVarP(&flags.InitialFile, "initial-file", "I", "", "scenario JSON describing the start configuration (required)")
	f.StringVarP(&flags.FinalFile, "final-file", "F", "", "scenario JSON describing the goal configuration")
	f.StringVarP(&flags.ExportFile, "export-file", "e", "", ".scen file to write the found path to")
	f.StringVarP(&flags.AnalysisFile, "analysis-file", "a", "", "run report file to write")
	f.StringVarP(&flags.MovesFolder, "moves-folder", "m", "", "directory of move JSON files (required)")
	f.StringVarP(&flags.SearchMethod, "search-method", "s", flags.SearchMethod, "BFS, BDBFS, A*, BDA*")
	f.StringVarP(&flags.Heuristic, "heuristic", "h", flags.Heuristic, `MRSH-1, SymDiff, Manhattan, Chebyshev, "Nearest Chebyshev"`)
	f.StringVarP(&flags.EdgeCheck, "edge-check", "c", "", "cube, rd (defaults to the scenario file's own adjacencyMode)")
	f.BoolVarP(&flags.IgnoreColors, "ignore-colors", "i", false, "drop colorProperty from hashing and heuristics")

	f.BoolVar(&flags.ParallelMoves, "parallel-moves", flags.ParallelMoves, "expand states via simultaneous multi-module moves")
	f.BoolVar(&flags.HeuristicCacheOptimization, "heuristic-cache-optimization", flags.HeuristicCacheOptimization, "mark unreachable cells out-of-bounds after cache construction")
	f.BoolVar(&flags.HeuristicCacheDistLimitations, "heuristic-cache-dist-limitations", flags.HeuristicCacheDistLimitations, "bound MoveOffset construction by static-module reachability")
	f.BoolVar(&flags.HeuristicCacheHelpLimitations, "heuristic-cache-help-limitations", flags.HeuristicCacheHelpLimitations, "bound FreeSpaceCheckWithHelp's borrow budget")
	f.BoolVar(&flags.ConsistentHeuristicValidator, "consistent-heuristic-validator", flags.ConsistentHeuristicValidator, "abort on detected heuristic inconsistency")
	f.BoolVar(&flags.OutputJSON, "output-json", flags.OutputJSON, "emit the analysis report as JSON")
	f.BoolVar(&flags.OldEdgeCheck, "old-edge-check", flags.OldEdgeCheck, "legacy edge-check toggle, carried for flag parity")
	f.BoolVar(&flags.RDEdgeCheck, "rd-edge-check", flags.RDEdgeCheck, "force rhombic-dodecahedron adjacency")
	f.BoolVar(&flags.GenerateFinalState, "generate-final-state", flags.GenerateFinalState, "include the reached configuration in the analysis report")
	f.BoolVar(&flags.PrintPath, "print-path", flags.PrintPath, "include the full move list in the analysis report")

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "latticepath:", err)
		return 1
	}
	return 0
}

func runPlan(cmd *cobra.Command, flags planner.Flags) error {
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)

	result, err := planner.Run(context.Background(), flags, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "path found: %d step(s)\n", len(result.Steps))

	return planner.WriteOutputs(flags, result)
}
