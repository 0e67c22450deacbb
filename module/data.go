package module

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/latticepath/property"
)

// Sentinel errors for the compact 64-bit encoding (spec.md §3, "Compact
// 64-bit" layout and §7 "INT64 module encoding" configuration errors).
var (
	// ErrCompactOrderTooLarge is returned when D > 3.
	ErrCompactOrderTooLarge = errors.New("module: compact encoding requires order <= 3")
	// ErrCompactAxisTooLarge is returned when axisSize > 256.
	ErrCompactAxisTooLarge = errors.New("module: compact encoding requires axisSize <= 256")
	// ErrCompactTooManyProperties is returned when a module carries more
	// than one property.
	ErrCompactTooManyProperties = errors.New("module: compact encoding allows at most one property per module")
	// ErrCompactNotEncodable is returned when the single property does not
	// implement property.IntEncodable.
	ErrCompactNotEncodable = errors.New("module: compact encoding requires an IntEncodable property")
)

// Data is the immutable snapshot atom of spec.md §3: an (coords, properties)
// pair extracted from a lattice, stored by value. EncodeCompact/DecodeCompact
// below pack it into a 64-bit word and back; that packed form has no hash of
// its own and does not rebuild the property set, so hashing and set
// membership always go through this struct.
type Data struct {
	Coords     []int
	Properties *property.Set
}

// Hash returns a stable hash over coords and properties. When
// ignoreProperties is true, the property contribution is dropped (spec.md
// §4.5).
func (d Data) Hash(ignoreProperties bool) uint64 {
	h := hashCoords(d.Coords)
	var ph uint64
	if d.Properties != nil {
		ph = d.Properties.Hash(ignoreProperties)
	}
	return mixData(h, ph)
}

func hashCoords(coords []int) uint64 {
	var h uint64 = 14695981039346656037
	for _, c := range coords {
		h ^= uint64(uint32(c))
		h *= 1099511628211
	}
	return h
}

func mixData(coordHash, propHash uint64) uint64 {
	x := coordHash ^ (propHash*0x9E3779B97F4A7C15 + 1)
	x ^= x >> 29
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 32
	return x
}

// key returns a canonical, order-independent-safe string identifying this
// item's coordinate (used as the DataSet map key; two distinct modules
// never share a coordinate in a valid lattice state).
func (d Data) key() string {
	var b strings.Builder
	for i, c := range d.Coords {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// DataSet is an unordered collection of Data snapshots -- the "set of
// ModuleData for non-static modules" that Lattice.Snapshot produces and
// Lattice.Restore consumes (spec.md §4.2).
type DataSet struct {
	items map[string]Data
}

// NewDataSet constructs a DataSet from a slice of Data.
func NewDataSet(items []Data) *DataSet {
	ds := &DataSet{items: make(map[string]Data, len(items))}
	for _, d := range items {
		ds.items[d.key()] = d
	}
	return ds
}

// Add inserts or replaces the entry at d.Coords.
func (ds *DataSet) Add(d Data) {
	ds.items[d.key()] = d
}

// Len reports the number of entries.
func (ds *DataSet) Len() int { return len(ds.items) }

// Items returns the entries in a deterministic order (sorted by coordinate
// key), so that repeated calls and repeated runs over equal sets agree --
// required by the test suite's determinism property (spec.md §8).
func (ds *DataSet) Items() []Data {
	keys := make([]string, 0, len(ds.items))
	for k := range ds.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Data, len(keys))
	for i, k := range keys {
		out[i] = ds.items[k]
	}
	return out
}

// Hash returns an order-insensitive hash over every item (spec.md §3:
// "Hash is order-insensitive across a set of ModuleData").
func (ds *DataSet) Hash(ignoreProperties bool) uint64 {
	var h uint64
	for _, d := range ds.items {
		h ^= mix(d.Hash(ignoreProperties))
	}
	return h
}

func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// Equal reports whether ds and other hold the same coordinate->content
// mapping.
func (ds *DataSet) Equal(other *DataSet) bool {
	if other == nil || len(ds.items) != len(other.items) {
		return false
	}
	for k, d := range ds.items {
		od, ok := other.items[k]
		if !ok {
			return false
		}
		if len(d.Coords) != len(od.Coords) {
			return false
		}
		for i := range d.Coords {
			if d.Coords[i] != od.Coords[i] {
				return false
			}
		}
		if (d.Properties == nil) != (od.Properties == nil) {
			return false
		}
		if d.Properties != nil && !d.Properties.Equal(od.Properties) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of ds.
func (ds *DataSet) Clone() *DataSet {
	out := &DataSet{items: make(map[string]Data, len(ds.items))}
	for k, d := range ds.items {
		coords := make([]int, len(d.Coords))
		copy(coords, d.Coords)
		var props *property.Set
		if d.Properties != nil {
			props = d.Properties.Clone()
		}
		out.items[k] = Data{Coords: coords, Properties: props}
	}
	return out
}

// EncodeCompact packs a single-property, order<=3 Data item into 64 bits:
// coords occupy the low 24 bits (3x8-bit fields, zero-filled for order<3),
// and the property's IntEncodable value occupies the high 40 bits (spec.md
// §3, "Compact 64-bit"). Returns a Configuration error (per spec.md §7) if
// any precondition is violated.
func EncodeCompact(d Data, axisSize int) (uint64, error) {
	if len(d.Coords) > 3 {
		return 0, fmt.Errorf("%w: order=%d", ErrCompactOrderTooLarge, len(d.Coords))
	}
	if axisSize > 256 {
		return 0, fmt.Errorf("%w: axisSize=%d", ErrCompactAxisTooLarge, axisSize)
	}
	propCount := 0
	if d.Properties != nil {
		propCount = d.Properties.Len()
	}
	if propCount > 1 {
		return 0, fmt.Errorf("%w: got %d", ErrCompactTooManyProperties, propCount)
	}

	var low uint64
	for i, c := range d.Coords {
		if c < 0 || c > 255 {
			return 0, fmt.Errorf("%w: coord %d out of [0,255]", ErrCompactAxisTooLarge, c)
		}
		low |= uint64(uint8(c)) << (8 * uint(i))
	}

	var high uint64
	if propCount == 1 {
		var enc property.Property
		d.Properties.Each(func(p property.Property) { enc = p })
		ie, ok := enc.(property.IntEncodable)
		if !ok {
			return 0, fmt.Errorf("%w: property %q", ErrCompactNotEncodable, enc.Name())
		}
		v, err := ie.EncodeInt()
		if err != nil {
			return 0, err
		}
		if v >= (1 << 40) {
			return 0, fmt.Errorf("module: encoded property value %d does not fit in 40 bits", v)
		}
		high = v
	}

	return low | (high << 24), nil
}

// DecodeCompact is the inverse of EncodeCompact's coordinate packing; it
// returns the order-3 coordinate triple and the raw 40-bit property
// integer (callers interpret the property integer themselves -- the
// compact layout does not retain enough information to reconstruct a
// concrete property.Property).
func DecodeCompact(v uint64) (coords [3]int, propInt uint64) {
	coords[0] = int(uint8(v))
	coords[1] = int(uint8(v >> 8))
	coords[2] = int(uint8(v >> 16))
	propInt = (v >> 24) & ((1 << 40) - 1)
	return coords, propInt
}
