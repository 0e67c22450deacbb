package planner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/scenario"
	"github.com/katalvlaran/latticepath/search"
)

// moveRecord is the serializable shape of one search.ModuleMove, used by
// both the JSON and plain-text analysis report (spec.md §6.5, "PRINT_PATH").
type moveRecord struct {
	ModuleID int    `json:"moduleId"`
	Offset   []int  `json:"offset"`
	Name     string `json:"name,omitempty"`
	Reversed bool   `json:"reversed,omitempty"`
}

// Report is the run summary spec.md §6.4's --analysis-file writes, covering
// every CONFIG_OUTPUT_JSON-gated field the original's SearchAnalysis
// emitted, reduced to what this port's search APIs actually expose.
type Report struct {
	SearchMethod string       `json:"searchMethod"`
	Heuristic    string       `json:"heuristic,omitempty"`
	PathLength   int          `json:"pathLength"`
	Exhausted    bool         `json:"exhausted"`
	FinalState   []module.Data `json:"finalState,omitempty"`
	Path         []moveRecord `json:"path,omitempty"`
}

func flattenPath(path []search.Step) []moveRecord {
	var out []moveRecord
	for _, step := range path {
		for _, mm := range step.Moves {
			out = append(out, moveRecord{
				ModuleID: mm.ModuleID,
				Offset:   mm.Move.FinalOffset,
				Name:     mm.Move.Name,
				Reversed: step.Reversed,
			})
		}
	}
	return out
}

// WriteReport renders r as JSON (flags.OutputJSON) or as a plain
// bufio.Writer-driven text block (the teacher's fmt.Fprintf-per-line
// convention, mirrored from scenario.WriteSCEN).
func WriteReport(w io.Writer, r Report, outputJSON bool) error {
	if outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "search method:   %s\n", r.SearchMethod)
	if r.Heuristic != "" {
		fmt.Fprintf(bw, "heuristic:       %s\n", r.Heuristic)
	}
	fmt.Fprintf(bw, "exhausted:       %t\n", r.Exhausted)
	fmt.Fprintf(bw, "path length:     %d\n", r.PathLength)
	if r.FinalState != nil {
		fmt.Fprintln(bw, "final state:")
		for i, d := range r.FinalState {
			fmt.Fprintf(bw, "  module %d: %v\n", i, d.Coords)
		}
	}
	if r.Path != nil {
		fmt.Fprintln(bw, "path:")
		for _, mv := range r.Path {
			dir := "apply"
			if mv.Reversed {
				dir = "unapply"
			}
			fmt.Fprintf(bw, "  %s module %d by %v (%s)\n", dir, mv.ModuleID, mv.Offset, mv.Name)
		}
	}
	return bw.Flush()
}

// groupAndViews derives .scen export blocks from lat's current module
// registry: one VisualGroup per distinct colorProperty value (modules with
// no colorProperty share a default grey group), and one ModuleView per
// registered module. Grouping by id keeps block ordering deterministic
// (spec.md §5).
func groupAndViews(lat *lattice.Lattice, ids []int) ([]scenario.VisualGroup, []scenario.ModuleView) {
	sort.Ints(ids)

	groupOf := make(map[int]int) // packed RGB -> groupId
	var groups []scenario.VisualGroup
	views := make([]scenario.ModuleView, 0, len(ids))

	for _, id := range ids {
		m, ok := lat.ModuleByID(id)
		if !ok {
			continue
		}
		rgb := 0xAAAAAA
		if m.Properties != nil {
			if c, ok := m.Properties.Find(property.ColorPropertyName).(*property.ColorProperty); ok {
				rgb = c.RGB
			}
		}
		gid, exists := groupOf[rgb]
		if !exists {
			gid = len(groups)
			groupOf[rgb] = gid
			groups = append(groups, scenario.VisualGroup{
				ID:    gid,
				R:     (rgb >> 16) & 0xFF,
				G:     (rgb >> 8) & 0xFF,
				B:     rgb & 0xFF,
				Scale: 50,
			})
		}
		views = append(views, scenario.ModuleView{ID: id, GroupID: gid, Coords: append([]int(nil), m.Coords...)})
	}

	return groups, views
}

func allModuleIDs(lat *lattice.Lattice, count int) []int {
	ids := make([]int, 0, count)
	for id := 0; id < count; id++ {
		if _, ok := lat.ModuleByID(id); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
