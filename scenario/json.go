package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
)

type scenarioFileJSON struct {
	Order            int                 `json:"order"`
	Modules          []moduleJSON        `json:"modules"`
	AdjacencyMode    string              `json:"adjacencyMode"`
	AdjacencyOffsets [][]int             `json:"adjacencyOffsets"`
	Boundaries       [][]int             `json:"boundaries"`
	TensorPadding    int                 `json:"tensorPadding"`
}

type moduleJSON struct {
	Position   []int                      `json:"position"`
	Static     bool                       `json:"static"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type colorPropertyJSON struct {
	Color json.RawMessage `json:"color"`
}

type orientationPropertyJSON struct {
	Orientation []int `json:"orientation"`
}

// LoadState decodes a scenario JSON file (spec.md §6.1) into the module list
// it describes -- non-static modules first, static modules after, ids dense
// over both, matching module.Module's "non-static ids form the prefix [0,S)"
// convention -- and the LatticeConfig needed to construct the lattice they
// live on. The returned config's AxisSize/Pad are not yet sized; call
// Preprocess to fill them in.
func LoadState(r io.Reader) ([]module.Module, LatticeConfig, error) {
	var raw scenarioFileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, LatticeConfig{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	cfg := LatticeConfig{
		Order:         raw.Order,
		Pad:           raw.TensorPadding,
		CustomOffsets: raw.AdjacencyOffsets,
		Boundaries:    raw.Boundaries,
	}
	switch raw.AdjacencyMode {
	case "", "Cube Face":
		cfg.Mode = lattice.Cube
	case "Cube Edge":
		cfg.Mode = lattice.RhombicDodecahedron
	default:
		return nil, LatticeConfig{}, fmt.Errorf("%w: %q", ErrUnknownAdjacencyMode, raw.AdjacencyMode)
	}

	var nonStatic, static []module.Module
	seen := make(map[string]bool)
	for _, mj := range raw.Modules {
		key := fmt.Sprint(mj.Position)
		if seen[key] {
			return nil, LatticeConfig{}, fmt.Errorf("%w: %v", ErrDuplicateModulePosition, mj.Position)
		}
		seen[key] = true

		m := module.Module{Coords: append([]int(nil), mj.Position...), Static: mj.Static}
		if len(mj.Properties) > 0 {
			props, err := decodeProperties(mj.Properties)
			if err != nil {
				return nil, LatticeConfig{}, err
			}
			m.Properties = props
		}
		if mj.Static {
			static = append(static, m)
		} else {
			nonStatic = append(nonStatic, m)
		}
	}

	modules := make([]module.Module, 0, len(nonStatic)+len(static))
	nextID := 0
	for _, m := range nonStatic {
		m.ID = nextID
		nextID++
		modules = append(modules, m)
	}
	for _, m := range static {
		m.ID = nextID
		nextID++
		modules = append(modules, m)
	}

	return modules, cfg, nil
}

func decodeProperties(raw map[string]json.RawMessage) (*property.Set, error) {
	set := property.NewSet()
	if colorRaw, ok := raw[property.ColorPropertyName]; ok {
		c, err := decodeColor(colorRaw)
		if err != nil {
			return nil, err
		}
		if err := set.Add(c); err != nil {
			return nil, err
		}
	}
	if orientationRaw, ok := raw[property.OrientationPropertyName]; ok {
		o, err := decodeOrientation(orientationRaw)
		if err != nil {
			return nil, err
		}
		if err := set.Add(o); err != nil {
			return nil, err
		}
	}
	return set, nil
}

var namedColors = map[string][3]int{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
}

func decodeColor(raw json.RawMessage) (*property.ColorProperty, error) {
	var wrapper colorPropertyJSON
	// The scenario shape nests the value under "color"; tolerate a bare
	// value too ({"colorProperty": "#ff0000"}) by falling back to raw.
	body := raw
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Color) > 0 {
		body = wrapper.Color
	}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		if len(asString) == 7 && asString[0] == '#' {
			var r, g, b int
			if _, err := fmt.Sscanf(asString, "#%02x%02x%02x", &r, &g, &b); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidColor, asString)
			}
			return property.NewColorPropertyRGB(r, g, b), nil
		}
		if rgb, ok := namedColors[asString]; ok {
			return property.NewColorPropertyRGB(rgb[0], rgb[1], rgb[2]), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, asString)
	}

	var asTriple [3]int
	if err := json.Unmarshal(body, &asTriple); err == nil {
		return property.NewColorPropertyRGB(asTriple[0], asTriple[1], asTriple[2]), nil
	}

	var asInt int
	if err := json.Unmarshal(body, &asInt); err == nil {
		return property.NewColorProperty(asInt), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidColor, string(body))
}

// decodeOrientation decodes an orientationProperty value into an
// OrientationProperty, mirroring original_source's
// `propertyDef["orientation"]` shape: the scenario shape nests the degrees
// list under "orientation" ({"orientationProperty": {"orientation": [0, 90]}}),
// but a bare array ({"orientationProperty": [0, 90]}) is tolerated too.
func decodeOrientation(raw json.RawMessage) (*property.OrientationProperty, error) {
	var wrapper orientationPropertyJSON
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Orientation != nil {
		return property.NewOrientationProperty(wrapper.Orientation), nil
	}

	var asSlice []int
	if err := json.Unmarshal(raw, &asSlice); err == nil {
		return property.NewOrientationProperty(asSlice), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidOrientation, string(raw))
}

// Preprocess computes the minimum axis size from the modules' coordinates, a
// zero offset that shifts every coordinate non-negative, and folds in the
// maximum connection distance implied by cfg's adjacency offsets as tensor
// padding (spec.md §6.1: "Preprocessing computes the minimum axis size from
// static-module coordinates, a zero offset, and the maximum connection
// distance from adjacency offsets"). It returns the shifted modules and the
// sized config; lattice.New is then safe to call with the returned AxisSize.
func Preprocess(modules []module.Module, cfg LatticeConfig) ([]module.Module, LatticeConfig, error) {
	if cfg.Order <= 0 {
		if len(modules) > 0 {
			cfg.Order = len(modules[0].Coords)
		} else {
			cfg.Order = 2
		}
	}

	maxConnDist := 1
	for _, off := range cfg.CustomOffsets {
		if d := chebyshevNorm(off); d > maxConnDist {
			maxConnDist = d
		}
	}
	if cfg.Pad < maxConnDist {
		cfg.Pad = maxConnDist
	}

	zeroOffset := ZeroOffset(modules, cfg.Order, cfg.Pad)
	shifted, maxCoord := ShiftModules(modules, zeroOffset)

	if cfg.AxisSize <= 0 {
		cfg.AxisSize = maxCoord + 1 + cfg.Pad
	}

	return shifted, cfg, nil
}

// ZeroOffset computes the per-axis shift Preprocess applies: the negated
// minimum coordinate on each axis across modules (zero on an axis with no
// negative coordinate), plus pad slack (spec.md
// §6.1: "a zero offset"). Exported so a caller juggling more than one
// scenario file describing the same physical lattice (e.g. an initial and a
// final-state file) can derive the shift once from one file's modules and
// apply it identically to the other's via ShiftModules, instead of letting
// each file's coordinates float to their own independent origin.
func ZeroOffset(modules []module.Module, order, pad int) []int {
	offset := make([]int, order)
	for _, m := range modules {
		for axis, c := range m.Coords {
			if c < offset[axis] {
				offset[axis] = c
			}
		}
	}
	for i := range offset {
		offset[i] = -offset[i] + pad
	}
	return offset
}

// ShiftModules adds offset to every module's coordinates, returning the
// shifted copies and the largest resulting coordinate seen (for AxisSize
// sizing).
func ShiftModules(modules []module.Module, offset []int) ([]module.Module, int) {
	shifted := make([]module.Module, len(modules))
	maxCoord := 0
	for i, m := range modules {
		coords := make([]int, len(m.Coords))
		for axis, c := range m.Coords {
			coords[axis] = c + offset[axis]
			if coords[axis] > maxCoord {
				maxCoord = coords[axis]
			}
		}
		m.Coords = coords
		shifted[i] = m
	}
	return shifted, maxCoord
}

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
