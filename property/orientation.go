package property

// OrientationPropertyName is the key used in Set and, nesting the degrees
// list under "orientation" (scenario/json.go's decodeOrientation), in
// scenario JSON.
const OrientationPropertyName = "orientationProperty"

// OrientationProperty tracks a per-axis heading in degrees [0, 360),
// grounded on original_source/pathfinder/properties/Orientation.{h,cpp}.
// It is Rotatable and Reflectable (Rotate swaps two axes' headings, Reflect
// negates one; move-template symmetry expansion calls neither) and Dynamic (a move rotates the heading on the move's dominant axis by
// +/-90 degrees, reversed on Unapply).
type OrientationProperty struct {
	Degrees []int // one entry per lattice axis, each in [0, 360)
}

// NewOrientationProperty constructs an OrientationProperty, normalizing
// every entry into [0, 360) exactly as the original constructor does
// (`rotation += 360` for negatives, then `% 360`).
func NewOrientationProperty(degrees []int) *OrientationProperty {
	out := make([]int, len(degrees))
	for i, d := range degrees {
		out[i] = normalizeDegrees(d)
	}
	return &OrientationProperty{Degrees: out}
}

func normalizeDegrees(d int) int {
	d %= 360
	if d < 0 {
		d += 360
	}
	return d
}

func (o *OrientationProperty) Name() string { return OrientationPropertyName }

func (o *OrientationProperty) Clone() Property {
	out := make([]int, len(o.Degrees))
	copy(out, o.Degrees)
	return &OrientationProperty{Degrees: out}
}

func (o *OrientationProperty) Equal(other Property) bool {
	oo, ok := other.(*OrientationProperty)
	if !ok || len(oo.Degrees) != len(o.Degrees) {
		return false
	}
	for i, d := range o.Degrees {
		if oo.Degrees[i] != d {
			return false
		}
	}
	return true
}

func (o *OrientationProperty) Hash() uint64 {
	var h uint64 = 14695981039346656037 // FNV-1a offset basis
	for _, d := range o.Degrees {
		h ^= uint64(uint32(d))
		h *= 1099511628211 // FNV-1a prime
	}
	return h
}

// Rotate swaps the headings tracked for axes a and b, mirroring a 90-degree
// rotation of the whole lattice that exchanges those two axes.
func (o *OrientationProperty) Rotate(a, b int) {
	o.Degrees[a], o.Degrees[b] = o.Degrees[b], o.Degrees[a]
}

// Reflect negates the heading on the given axis, mirroring a reflection of
// the whole lattice along that axis.
func (o *OrientationProperty) Reflect(index int) {
	o.Degrees[index] = normalizeDegrees(-o.Degrees[index])
}

// OnMove rotates the heading on the move's dominant axis (the offset
// component of largest magnitude) by +90 degrees when that component is
// positive and -90 when it is negative, with the sign flipped when
// reversing. This keeps dynamic updates commutative per SPEC_FULL.md §4.3's
// Open Question resolution: only one axis's heading changes per move, so
// the order in which move.Apply/Unapply fire updates never matters for
// this property.
func (o *OrientationProperty) OnMove(offset []int, reversing bool) error {
	axis, delta := dominantAxis(offset)
	if axis < 0 {
		return nil
	}
	step := 90
	if reversing {
		step = -90
	}
	if delta < 0 {
		step = -step
	}
	o.Degrees[axis] = normalizeDegrees(o.Degrees[axis] + step)
	return nil
}

func dominantAxis(offset []int) (axis, value int) {
	axis = -1
	best := 0
	for i, v := range offset {
		av := v
		if av < 0 {
			av = -av
		}
		if av > best {
			best = av
			axis = i
			value = v
		}
	}
	return axis, value
}

var _ Property = (*OrientationProperty)(nil)
var _ Rotatable = (*OrientationProperty)(nil)
var _ Reflectable = (*OrientationProperty)(nil)
var _ Dynamic = (*OrientationProperty)(nil)
