package property_test

import (
	"testing"

	"github.com/katalvlaran/latticepath/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddDuplicate(t *testing.T) {
	s := property.NewSet()
	require.NoError(t, s.Add(property.NewColorProperty(0xFF0000)))
	err := s.Add(property.NewColorProperty(0x00FF00))
	require.Error(t, err)
	var dup *property.ErrDuplicateProperty
	assert.ErrorAs(t, err, &dup)
}

func TestSetHashOrderIndependent(t *testing.T) {
	a := property.NewSet()
	_ = a.Add(property.NewColorProperty(1))
	_ = a.Add(property.NewOrientationProperty([]int{0, 90}))

	b := property.NewSet()
	_ = b.Add(property.NewOrientationProperty([]int{0, 90}))
	_ = b.Add(property.NewColorProperty(1))

	assert.Equal(t, a.Hash(false), b.Hash(false))
	assert.True(t, a.Equal(b))
}

func TestSetHashIgnoreProperties(t *testing.T) {
	s := property.NewSet()
	_ = s.Add(property.NewColorProperty(5))
	assert.Equal(t, uint64(0), s.Hash(true))
}

func TestColorCloneIndependent(t *testing.T) {
	c := property.NewColorPropertyRGB(10, 20, 30)
	clone := c.Clone().(*property.ColorProperty)
	clone.RGB = 0
	assert.NotEqual(t, c.RGB, clone.RGB)
	assert.True(t, c.Equal(property.NewColorProperty(c.RGB)))
}

func TestColorEncodeInt(t *testing.T) {
	c := property.NewColorPropertyRGB(1, 2, 3)
	v, err := c.EncodeInt()
	require.NoError(t, err)
	assert.Equal(t, uint64((1<<16)|(2<<8)|3), v)
}

func TestOrientationNormalization(t *testing.T) {
	o := property.NewOrientationProperty([]int{-90, 450, 0})
	assert.Equal(t, []int{270, 90, 0}, o.Degrees)
}

func TestOrientationRotateAxes(t *testing.T) {
	o := property.NewOrientationProperty([]int{10, 20, 30})
	o.Rotate(0, 2)
	assert.Equal(t, []int{30, 20, 10}, o.Degrees)
}

func TestOrientationReflect(t *testing.T) {
	o := property.NewOrientationProperty([]int{90})
	o.Reflect(0)
	assert.Equal(t, 270, o.Degrees[0])
}

func TestOrientationOnMoveRoundTrip(t *testing.T) {
	o := property.NewOrientationProperty([]int{0, 0})
	offset := []int{1, 0}
	require.NoError(t, o.OnMove(offset, false))
	assert.Equal(t, 90, o.Degrees[0])
	require.NoError(t, o.OnMove(offset, true))
	assert.Equal(t, 0, o.Degrees[0])
}
