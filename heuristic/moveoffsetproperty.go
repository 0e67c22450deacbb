package heuristic

import (
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/move"
	"github.com/katalvlaran/latticepath/property"
	"github.com/katalvlaran/latticepath/tensor"
)

// MoveOffsetProperty is the "MoveOffsetProperty" cache kind of spec.md
// §4.7: one MoveOffset-style reverse-BFS fill per distinct property integer
// value among the goal modules -- "the property dimension is tracked
// independently per goal", since properties are assumed static within the
// search for this cache kind.
type MoveOffsetProperty struct {
	perProperty map[uint64]*tensor.Tensor[int]
}

// PropertyGoal pairs a goal coordinate with the encoded integer value of the
// property a module must carry for this cache entry to apply.
type PropertyGoal struct {
	Coords  []int
	PropInt uint64
}

// BuildMoveOffsetProperty groups goals by PropInt and fills one MoveOffset
// cache per group.
func BuildMoveOffsetProperty(lat *lattice.Lattice, cat *move.Catalog, goals []PropertyGoal, opts Options) *MoveOffsetProperty {
	grouped := make(map[uint64][][]int)
	for _, g := range goals {
		grouped[g.PropInt] = append(grouped[g.PropInt], g.Coords)
	}

	// The per-group fills run without the cache optimization; a cell is
	// sealed off only when every group's fill missed it.
	groupOpts := opts
	groupOpts.CacheOptimization = false

	out := &MoveOffsetProperty{perProperty: make(map[uint64]*tensor.Tensor[int], len(grouped))}
	for propInt, coordsSet := range grouped {
		mo := BuildMoveOffset(lat, cat, coordsSet, groupOpts)
		out.perProperty[propInt] = mo.dist
	}

	if opts.CacheOptimization && len(out.perProperty) > 0 {
		nearest := tensor.New[int](lat.Order(), lat.AxisSize(), Unreachable, nil)
		for _, dist := range out.perProperty {
			for i := 0; i < dist.Len(); i++ {
				if v := dist.GetIndex(i); v < nearest.GetIndex(i) {
					nearest.SetIndex(i, v)
				}
			}
		}
		markUnreachableOutOfBounds(lat, nearest)
	}
	return out
}

// Value returns the lower bound for a module at coords carrying propInt, if
// any goal group shares that property value.
func (c *MoveOffsetProperty) Value(coords []int, propInt uint64) (int, bool) {
	dist, ok := c.perProperty[propInt]
	if !ok || !dist.InBounds(coords) {
		return 0, false
	}
	v := dist.Get(coords)
	if v == Unreachable {
		return 0, false
	}
	return v, true
}

// PropertyGoalsFromDataSet extracts one PropertyGoal per entry of goals,
// reading propertyName's IntEncodable value (module.EncodeCompact's
// single-property assumption, generalized here to any named property).
// Entries without that property, or without an IntEncodable implementation,
// get PropInt 0.
func PropertyGoalsFromDataSet(goals *module.DataSet, propertyName string) ([]PropertyGoal, error) {
	items := goals.Items()
	out := make([]PropertyGoal, 0, len(items))
	for _, d := range items {
		var propInt uint64
		if d.Properties != nil {
			if p := d.Properties.Find(propertyName); p != nil {
				if ie, ok := p.(property.IntEncodable); ok {
					v, err := ie.EncodeInt()
					if err != nil {
						return nil, err
					}
					propInt = v
				}
			}
		}
		out = append(out, PropertyGoal{Coords: d.Coords, PropInt: propInt})
	}
	return out, nil
}
