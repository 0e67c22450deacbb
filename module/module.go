// Package module defines Module identity and the ModuleData snapshot atom
// described in spec.md §3.
package module

import "github.com/katalvlaran/latticepath/property"

// Module is a single discrete agent occupying one lattice cell. IDs are
// dense and assigned at registration: non-static ids form the prefix
// [0, S), static ids form [S, N) (spec.md §3).
type Module struct {
	ID         int
	Coords     []int
	Static     bool
	Properties *property.Set
}

// Clone returns a deep copy of m (coordinates and property set copied).
func (m Module) Clone() Module {
	coords := make([]int, len(m.Coords))
	copy(coords, m.Coords)
	var props *property.Set
	if m.Properties != nil {
		props = m.Properties.Clone()
	}
	return Module{ID: m.ID, Coords: coords, Static: m.Static, Properties: props}
}
