package planner

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/scenario"
	"github.com/katalvlaran/latticepath/search"
)

// Result is what a successful Run produces: the path (nil if start already
// equals goal), the lattice left at its initial configuration (restored
// after the search mutated it in place, per spec.md §4.2's Restore
// protocol), and the .scen export blocks captured before the search ran
// (spec.md §8 scenario 5: "module positions in block 2 match the initial
// state").
type Result struct {
	Steps       []search.Step
	Start       *module.DataSet
	Goal        *module.DataSet
	Lattice     *lattice.Lattice
	Groups      []scenario.VisualGroup
	ModuleViews []scenario.ModuleView
}

// Run wires scenario loading, lattice construction, move catalog assembly,
// heuristic selection, and search dispatch into the single driver call
// spec.md §6 describes, grounded on
// original_source/pathfinder/search/ConfigurationSpace.cpp's top-level
// Pathfind routine. Returns search.ErrExhausted unchanged if the chosen
// method exhausts its frontier (spec.md §6.4: "Exit 0 on success, 1 on
// unreachable input path or search exhaustion" is the cmd layer's concern).
func Run(ctx context.Context, flags Flags, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	if flags.InitialFile == "" {
		return nil, ErrMissingInitialFile
	}

	lat, cfg, initialModules, zeroOffset, err := buildLattice(flags, logger)
	if err != nil {
		return nil, err
	}

	var goal *module.DataSet
	if flags.FinalFile != "" {
		goal, err = loadGoal(flags.FinalFile, zeroOffset)
		if err != nil {
			return nil, err
		}
	} else {
		goal = lat.Snapshot()
	}

	cat, err := loadMovesFolder(flags.MovesFolder, cfg.Order)
	if err != nil {
		return nil, err
	}

	start := lat.Snapshot()
	groups, views := groupAndViews(lat, allModuleIDs(lat, len(initialModules)))

	engine := buildExpander(flags, cat)

	var steps []search.Step
	switch flags.SearchMethod {
	case "", "BFS":
		steps, err = search.BFS(ctx, lat, engine, goal, flags.IgnoreColors)

	case "BDBFS":
		steps, err = search.BidirectionalBFS(ctx, lat, engine, start, goal, flags.IgnoreColors)

	case "A*":
		h, herr := buildHeuristic(lat, cat, goal, flags)
		if herr != nil {
			return nil, herr
		}
		steps, err = search.AStar(ctx, lat, engine, goal, h, flags.IgnoreColors, flags.ParallelMoves, validateFor(flags, h))

	case "BDA*":
		hForward, herr := buildHeuristic(lat, cat, goal, flags)
		if herr != nil {
			return nil, herr
		}
		hBackward, herr := buildHeuristic(lat, cat, start, flags)
		if herr != nil {
			return nil, herr
		}
		validate := flags.ConsistentHeuristicValidator && hForward.Admissible && hBackward.Admissible
		steps, err = search.BidirectionalAStar(ctx, lat, engine, start, goal, hForward, hBackward, flags.IgnoreColors, flags.ParallelMoves, validate)

	default:
		return nil, ErrUnknownSearchMethod
	}
	if err != nil {
		return nil, err
	}

	if restoreErr := lat.Restore(start); restoreErr != nil {
		logger.Printf("planner: restoring lattice to its initial configuration: %v", restoreErr)
	}

	return &Result{Steps: steps, Start: start, Goal: goal, Lattice: lat, Groups: groups, ModuleViews: views}, nil
}

// WriteOutputs performs the file-writing side effects spec.md §6.4's
// --export-file and --analysis-file describe, left out of Run so callers
// (and scenario tests) can inspect a Result in memory without touching the
// filesystem.
func WriteOutputs(flags Flags, result *Result) error {
	if flags.ExportFile != "" {
		f, err := os.Create(flags.ExportFile)
		if err != nil {
			return fmt.Errorf("planner: creating export file: %w", err)
		}
		werr := scenario.WriteSCEN(f, result.Groups, result.ModuleViews, result.Steps)
		cerr := f.Close()
		if werr != nil {
			return werr
		}
		if cerr != nil {
			return cerr
		}
	}

	if flags.AnalysisFile != "" {
		report := Report{
			SearchMethod: flags.SearchMethod,
			Heuristic:    flags.Heuristic,
			PathLength:   len(result.Steps),
		}
		if flags.GenerateFinalState {
			report.FinalState = result.Goal.Items()
		}
		if flags.PrintPath {
			report.Path = flattenPath(result.Steps)
		}

		f, err := os.Create(flags.AnalysisFile)
		if err != nil {
			return fmt.Errorf("planner: creating analysis file: %w", err)
		}
		werr := WriteReport(f, report, flags.OutputJSON)
		cerr := f.Close()
		if werr != nil {
			return werr
		}
		if cerr != nil {
			return cerr
		}
	}

	return nil
}

func buildExpander(flags Flags, cat *move.Catalog) search.Expander {
	if flags.ParallelMoves {
		engine := move.NewParallelEngine(cat)
		return search.ParallelExpander(engine, flags.IgnoreColors, search.NewVisitedSet())
	}
	return search.SerialExpander(cat, flags.IgnoreColors)
}

// buildLattice loads the initial scenario file, resolves the adjacency mode
// (scenario file, overridden by --edge-check/-c or --rd-edge-check when
// given), preprocesses coordinates, and populates a fresh Lattice.
func buildLattice(flags Flags, logger *log.Logger) (*lattice.Lattice, scenario.LatticeConfig, []module.Module, []int, error) {
	f, err := os.Open(flags.InitialFile)
	if err != nil {
		return nil, scenario.LatticeConfig{}, nil, nil, fmt.Errorf("planner: opening initial file: %w", err)
	}
	defer f.Close()

	modules, cfg, err := scenario.LoadState(f)
	if err != nil {
		return nil, scenario.LatticeConfig{}, nil, nil, err
	}

	switch flags.EdgeCheck {
	case "":
		// scenario's own adjacencyMode is authoritative.
	case "cube":
		cfg.Mode = lattice.Cube
	case "rd":
		cfg.Mode = lattice.RhombicDodecahedron
	default:
		return nil, scenario.LatticeConfig{}, nil, nil, ErrUnknownEdgeCheck
	}
	if flags.RDEdgeCheck {
		cfg.Mode = lattice.RhombicDodecahedron
	}

	shifted, sized, err := scenario.Preprocess(modules, cfg)
	if err != nil {
		return nil, scenario.LatticeConfig{}, nil, nil, err
	}
	zeroOffset := scenario.ZeroOffset(modules, cfg.Order, sized.Pad)

	lat := lattice.New(sized.Order, sized.AxisSize, sized.Pad, sized.Mode, logger)
	if len(sized.CustomOffsets) > 0 {
		lat.SetAdjIndices(sized.CustomOffsets)
	}
	lat.SetIgnoreProperties(flags.IgnoreColors)

	for _, m := range shifted {
		if err := lat.AddModule(m); err != nil {
			return nil, scenario.LatticeConfig{}, nil, nil, err
		}
	}
	for _, b := range sized.Boundaries {
		if err := lat.AddBoundary(b); err != nil {
			return nil, scenario.LatticeConfig{}, nil, nil, err
		}
	}

	return lat, sized, shifted, zeroOffset, nil
}

// loadGoal decodes the final-state scenario file and reshapes it into the
// module.DataSet a search goal needs: non-static entries only, shifted by
// the SAME zeroOffset the initial file derived (spec.md §6.1's preprocessing
// step, applied once and shared across both files describing one physical
// lattice, rather than letting the final file float to its own origin).
func loadGoal(path string, zeroOffset []int) (*module.DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("planner: opening final file: %w", err)
	}
	defer f.Close()

	modules, _, err := scenario.LoadState(f)
	if err != nil {
		return nil, err
	}
	shifted, _ := scenario.ShiftModules(modules, zeroOffset)

	var items []module.Data
	for _, m := range shifted {
		if m.Static {
			continue
		}
		items = append(items, module.Data{Coords: m.Coords, Properties: m.Properties})
	}
	return module.NewDataSet(items), nil
}
