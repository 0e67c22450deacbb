package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/scenario"
)

// loadMovesFolder reads every file in dir (sorted by name, for
// determinism per spec.md §5), decodes each as a move JSON file via
// scenario.CollectMoveTemplates, and merges the results into a single
// catalog (spec.md §6.4, "--moves-folder/-m": several move files contribute
// to one combined move set).
func loadMovesFolder(dir string, order int) (*move.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("planner: reading moves folder %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var bases []*move.Move
	var permGen []bool
	fileOrder := order

	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("planner: opening move file %q: %w", name, err)
		}
		fileBases, filePermGen, fo, err := scenario.CollectMoveTemplates(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("planner: move file %q: %w", name, err)
		}
		if closeErr != nil {
			return nil, closeErr
		}
		bases = append(bases, fileBases...)
		permGen = append(permGen, filePermGen...)
		if fo > fileOrder {
			fileOrder = fo
		}
	}

	if len(bases) == 0 {
		return nil, ErrNoMoves
	}
	if order <= 0 {
		order = fileOrder
	}
	return move.NewCatalogSelective(bases, permGen, order), nil
}
