// Package property implements the per-module attribute bundle described by
// spec.md §3/§4.3 as a sealed set of concrete kinds plus an extension
// interface, replacing the original runtime plugin-loading mechanism (see
// DESIGN NOTES: "Property polymorphism via inheritance + runtime library
// loading").
package property

import "fmt"

// Property is the minimal contract every module attribute must satisfy:
// deep copy, equality, and a stable hash contribution. Two Properties that
// are Equal must produce the same Hash.
type Property interface {
	// Name identifies the property kind, used as the key in a Set.
	Name() string
	// Clone returns an independent deep copy.
	Clone() Property
	// Equal reports whether other is the same kind with identical state.
	Equal(other Property) bool
	// Hash returns a stable hash contribution for this property's state.
	Hash() uint64
}

// Rotatable is implemented by properties whose state changes when two lattice
// axes are swapped (a 90-degree rotation of the whole configuration).
type Rotatable interface {
	Property
	// Rotate swaps the roles of axes a and b.
	Rotate(a, b int)
}

// Reflectable is implemented by properties whose state changes when an axis
// is negated (a mirror reflection of the whole configuration).
type Reflectable interface {
	Property
	// Reflect negates axis index.
	Reflect(index int)
}

// IntEncodable is implemented by properties that can be packed into the
// high bits of a compact module encoding (spec.md §3, "Compact 64-bit").
// The encoded value must fit in 40 bits.
type IntEncodable interface {
	Property
	// EncodeInt returns a value in [0, 1<<40) representing this property's
	// state, or an error if the current state does not fit.
	EncodeInt() (uint64, error)
}

// Dynamic is implemented by properties that mutate as a side effect of a
// move being applied (spec.md §3: "dynamic... receives an update callback
// after each move with the move-offset vector"). Per SPEC_FULL.md §4.3's
// resolution of the corresponding Open Question, OnMove implementations
// must commute across update order: move.Apply/Unapply fire updates in the
// Set's map iteration order, which is unspecified and is not reversed on
// Unapply, so Unapply does not exactly undo Apply for a non-commutative
// Dynamic property.
type Dynamic interface {
	Property
	// OnMove updates the property's state in response to a move of the
	// owning module by offset. reversing is true when the move is being
	// undone (Unapply) rather than applied.
	OnMove(offset []int, reversing bool) error
}

// ErrDuplicateProperty is returned by Set.Add when a property of the same
// Name already exists in the set.
type ErrDuplicateProperty struct{ Name string }

func (e *ErrDuplicateProperty) Error() string {
	return fmt.Sprintf("property: duplicate property %q", e.Name)
}

// Set is an unordered bundle of named properties, at most one per Name.
type Set struct {
	byName map[string]Property
}

// NewSet constructs an empty Set.
func NewSet() *Set {
	return &Set{byName: make(map[string]Property)}
}

// Add inserts p into the set. Returns *ErrDuplicateProperty if a property
// with the same Name is already present.
func (s *Set) Add(p Property) error {
	if _, exists := s.byName[p.Name()]; exists {
		return &ErrDuplicateProperty{Name: p.Name()}
	}
	s.byName[p.Name()] = p
	return nil
}

// Set replaces (or inserts) the property with the given name.
func (s *Set) Set(p Property) {
	s.byName[p.Name()] = p
}

// Find returns the property with the given name, or nil if absent.
func (s *Set) Find(name string) Property {
	return s.byName[name]
}

// Len reports how many properties are in the set.
func (s *Set) Len() int { return len(s.byName) }

// Each calls fn for every property in the set, in unspecified order.
func (s *Set) Each(fn func(Property)) {
	for _, p := range s.byName {
		fn(p)
	}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	out := NewSet()
	for name, p := range s.byName {
		out.byName[name] = p.Clone()
	}
	return out
}

// Equal reports whether s and other hold the same named properties with
// equal state. Sets of differing size are never equal.
func (s *Set) Equal(other *Set) bool {
	if other == nil || len(s.byName) != len(other.byName) {
		return false
	}
	for name, p := range s.byName {
		op, ok := other.byName[name]
		if !ok || !p.Equal(op) {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash over every property in the set, or
// 0 if ignoreProperties is true (spec.md §4.5, "skipping properties when
// ignore_properties").
func (s *Set) Hash(ignoreProperties bool) uint64 {
	if ignoreProperties {
		return 0
	}
	var h uint64
	for _, p := range s.byName {
		// XOR combination keeps the hash order-independent across
		// properties in the same way module.Data combines ModuleData
		// items order-independently (spec.md §3, "Hash is
		// order-insensitive").
		h ^= mix(p.Hash())
	}
	return h
}

// mix spreads bits so XOR-combining several mix(p.Hash()) values does not
// degrade to the identity for small hash spaces (a plain XOR of raw hashes
// would let two single-property sets collide trivially whenever both
// properties hash equal).
func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// EachDynamic invokes fn for every Dynamic property in the set.
func (s *Set) EachDynamic(fn func(Dynamic) error) error {
	for _, p := range s.byName {
		if dp, ok := p.(Dynamic); ok {
			if err := fn(dp); err != nil {
				return err
			}
		}
	}
	return nil
}
