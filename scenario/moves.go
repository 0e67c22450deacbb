package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/latticepath/move"
)

type moveFileJSON struct {
	Moves []moveJSON `json:"moves"`
}

type moveJSON struct {
	Name           string               `json:"name"`
	Order          int                  `json:"order"`
	Def            json.RawMessage      `json:"def"`
	AnimSeq        []animSeqEntryJSON   `json:"animSeq"`
	PermGen        *bool                `json:"permGen"`
	PropertyChecks []propertyCheckJSON  `json:"propertyChecks"`
}

// animSeqEntryJSON decodes one ["tag", [dx,dy(,dz)]] pair (spec.md §6.2).
type animSeqEntryJSON struct {
	Tag    string
	Offset []int
}

func (e *animSeqEntryJSON) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &e.Tag); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Offset)
}

// propertyCheckJSON is the scenario-JSON shape of a move.PropertyCheck, in
// a generalized form: rather than a registry of named predicate functions with rotate/reflect
// argument-transform flags, a check names the property and the integer
// value (via property.IntEncodable) it must equal -- color is the only
// concrete static property this port carries, so that is all a check can
// constrain today.
type propertyCheckJSON struct {
	Module   []int  `json:"module"`
	Property string `json:"property"`
	Want     uint64 `json:"want"`
}

// LoadMoves decodes a move JSON file (spec.md §6.2) into a ready Catalog:
// each entry's "def" grid is parsed via move.ParseGrid2D/ParseGrid3D
// (selected by whether "def" decodes as a list of strings or as a list of
// string lists), tagged with its animSeq and propertyChecks, and
// handed to move.NewCatalogSelective honoring "permGen" (default true).
func LoadMoves(r io.Reader, order int) (*move.Catalog, error) {
	bases, permGen, fileOrder, err := CollectMoveTemplates(r)
	if err != nil {
		return nil, err
	}
	if order <= 0 {
		order = fileOrder
	}
	return move.NewCatalogSelective(bases, permGen, order), nil
}

// CollectMoveTemplates decodes a move JSON file into base templates and
// their permGen flags without building a Catalog, so a caller loading moves
// from several files (spec.md §6.4, "--moves-folder") can merge every file's
// templates into one combined Catalog via a single move.NewCatalogSelective
// call. The returned order is the file's own "order" field, for callers
// that have not otherwise fixed the lattice order yet.
func CollectMoveTemplates(r io.Reader) ([]*move.Move, []bool, int, error) {
	var raw moveFileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	bases := make([]*move.Move, 0, len(raw.Moves))
	permGen := make([]bool, 0, len(raw.Moves))
	order := 0

	for _, mj := range raw.Moves {
		mv, err := parseMoveDef(mj)
		if err != nil {
			return nil, nil, 0, err
		}
		mv.Name = mj.Name
		for _, a := range mj.AnimSeq {
			mv.Anim = append(mv.Anim, move.AnimSegment{Tag: a.Tag, Offset: a.Offset})
		}
		for _, pc := range mj.PropertyChecks {
			mv.PropertyChecks = append(mv.PropertyChecks, move.PropertyCheck{
				ModuleOffset: pc.Module,
				PropertyName: pc.Property,
				WantInt:      pc.Want,
			})
		}

		bases = append(bases, mv)
		permGen = append(permGen, mj.PermGen == nil || *mj.PermGen)
		if mj.Order > order {
			order = mj.Order
		}
	}

	return bases, permGen, order, nil
}

func parseMoveDef(mj moveJSON) (*move.Move, error) {
	var rows2D []string
	if err := json.Unmarshal(mj.Def, &rows2D); err == nil {
		mv, perr := move.ParseGrid2D(rows2D)
		if perr != nil {
			return nil, fmt.Errorf("%w: move %q: %v", ErrInvalidMoveTemplate, mj.Name, perr)
		}
		return mv, nil
	}

	var rows3D [][]string
	if err := json.Unmarshal(mj.Def, &rows3D); err == nil {
		mv, perr := move.ParseGrid3D(rows3D)
		if perr != nil {
			return nil, fmt.Errorf("%w: move %q: %v", ErrInvalidMoveTemplate, mj.Name, perr)
		}
		return mv, nil
	}

	return nil, fmt.Errorf("%w: move %q: def is neither a 2-D nor 3-D grid", ErrInvalidMoveTemplate, mj.Name)
}
