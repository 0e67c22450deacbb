package module_test

import (
	"testing"

	"github.com/katalvlaran/latticepath/module"
	"github.com/katalvlaran/latticepath/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSetHashOrderIndependent(t *testing.T) {
	a := module.NewDataSet([]module.Data{
		{Coords: []int{0, 0}},
		{Coords: []int{1, 0}},
	})
	b := module.NewDataSet([]module.Data{
		{Coords: []int{1, 0}},
		{Coords: []int{0, 0}},
	})
	assert.Equal(t, a.Hash(false), b.Hash(false))
	assert.True(t, a.Equal(b))
}

func TestDataSetCloneIndependent(t *testing.T) {
	orig := module.NewDataSet([]module.Data{{Coords: []int{2, 3}}})
	clone := orig.Clone()
	clone.Add(module.Data{Coords: []int{9, 9}})
	assert.Equal(t, 1, orig.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestDataHashMatchesAcrossEqualContent(t *testing.T) {
	props1 := property.NewSet()
	require.NoError(t, props1.Add(property.NewColorProperty(0x112233)))
	props2 := property.NewSet()
	require.NoError(t, props2.Add(property.NewColorProperty(0x112233)))

	d1 := module.Data{Coords: []int{1, 2, 3}, Properties: props1}
	d2 := module.Data{Coords: []int{1, 2, 3}, Properties: props2}
	assert.Equal(t, d1.Hash(false), d2.Hash(false))
}

func TestEncodeCompactRoundTripsCoords(t *testing.T) {
	d := module.Data{Coords: []int{1, 2, 3}}
	v, err := module.EncodeCompact(d, 256)
	require.NoError(t, err)

	coords, propInt := module.DecodeCompact(v)
	assert.Equal(t, [3]int{1, 2, 3}, coords)
	assert.Equal(t, uint64(0), propInt)
}

func TestEncodeCompactPacksSingleProperty(t *testing.T) {
	props := property.NewSet()
	require.NoError(t, props.Add(property.NewColorPropertyRGB(1, 2, 3)))
	d := module.Data{Coords: []int{0, 0, 0}, Properties: props}

	v, err := module.EncodeCompact(d, 256)
	require.NoError(t, err)

	_, propInt := module.DecodeCompact(v)
	assert.Equal(t, uint64((1<<16)|(2<<8)|3), propInt)
}

func TestEncodeCompactRejectsTooManyProperties(t *testing.T) {
	props := property.NewSet()
	require.NoError(t, props.Add(property.NewColorProperty(1)))
	require.NoError(t, props.Add(property.NewOrientationProperty([]int{0})))
	d := module.Data{Coords: []int{0, 0}, Properties: props}

	_, err := module.EncodeCompact(d, 256)
	require.ErrorIs(t, err, module.ErrCompactTooManyProperties)
}

func TestEncodeCompactRejectsOversizedOrder(t *testing.T) {
	d := module.Data{Coords: []int{0, 0, 0, 0}}
	_, err := module.EncodeCompact(d, 256)
	require.ErrorIs(t, err, module.ErrCompactOrderTooLarge)
}
