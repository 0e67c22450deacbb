package move

import "fmt"

// Catalog is the deduplicated, symmetry-expanded list of concrete moves plus
// the offset-indexed view spec.md §4.3 requires ("a flat list and a mapping
// final_offset -> list of moves with that offset").
type Catalog struct {
	moves       []*Move
	byOffset    map[string][]*Move
	maxDistance int
}

// NewCatalog expands every base template via Expand, deduplicates across
// bases (two different base templates may expand to structurally equal
// moves), and indexes the result.
func NewCatalog(bases []*Move, order int) *Catalog {
	c := &Catalog{byOffset: make(map[string][]*Move)}
	seen := make(map[string]bool)

	for _, base := range bases {
		for _, mv := range Expand(base, order) {
			k := mv.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			c.moves = append(c.moves, mv)

			ok := offsetKey(mv.FinalOffset)
			c.byOffset[ok] = append(c.byOffset[ok], mv)

			if d := chebyshevNorm(mv.FinalOffset); d > c.maxDistance {
				c.maxDistance = d
			}
		}
	}
	return c
}

// NewCatalogSelective is NewCatalog generalized to scenario.LoadMoves'
// per-move "permGen" flag (spec.md §6.2: "permGen:false suppresses symmetry
// expansion ... used for moves that are inherently directional"): bases[i]
// is symmetry-expanded unless permGen[i] is false, in which case it is
// inserted as-is. A short permGen defaults the remaining bases to expand.
func NewCatalogSelective(bases []*Move, permGen []bool, order int) *Catalog {
	c := &Catalog{byOffset: make(map[string][]*Move)}
	seen := make(map[string]bool)

	add := func(mv *Move) {
		k := mv.key()
		if seen[k] {
			return
		}
		seen[k] = true
		c.moves = append(c.moves, mv)

		ok := offsetKey(mv.FinalOffset)
		c.byOffset[ok] = append(c.byOffset[ok], mv)

		if d := chebyshevNorm(mv.FinalOffset); d > c.maxDistance {
			c.maxDistance = d
		}
	}

	for i, base := range bases {
		if i < len(permGen) && !permGen[i] {
			add(base)
			continue
		}
		for _, mv := range Expand(base, order) {
			add(mv)
		}
	}
	return c
}

// Moves returns the flat list of every concrete move in the catalog.
func (c *Catalog) Moves() []*Move { return c.moves }

// ByOffset returns every move whose FinalOffset equals offset.
func (c *Catalog) ByOffset(offset []int) []*Move {
	return c.byOffset[offsetKey(offset)]
}

// MaxDistance reports max|offset|_inf over every move in the catalog
// (spec.md §4.3: "used to size boundary padding").
func (c *Catalog) MaxDistance() int { return c.maxDistance }

func offsetKey(offset []int) string { return fmt.Sprint(offset) }

func chebyshevNorm(offset []int) int {
	m := 0
	for _, v := range offset {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}
