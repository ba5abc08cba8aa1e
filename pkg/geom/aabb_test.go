package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAABBNormalizesCorners(t *testing.T) {
	b := NewAABB(4, 5, 1, 2)
	assert.Equal(t, AABB{MinX: 1, MinY: 2, MaxX: 4, MaxY: 5}, b)
	assert.Equal(t, 3.0, b.Width())
	assert.Equal(t, 3.0, b.Height())
	assert.Equal(t, 9.0, b.Area())
}

func TestEmptyAndArea(t *testing.T) {
	assert.True(t, AABB{}.Empty())
	assert.Equal(t, 0.0, AABB{}.Area())
	assert.False(t, NewAABB(0, 0, 1, 1).Empty())
}

func TestContains(t *testing.T) {
	b := NewAABB(0, 0, 10, 10)
	assert.True(t, b.Contains(5, 5))
	assert.True(t, b.Contains(0, 10), "boundary counts as inside")
	assert.False(t, b.Contains(11, 5))

	assert.True(t, b.ContainsBox(NewAABB(2, 2, 8, 8)))
	assert.False(t, b.ContainsBox(NewAABB(2, 2, 12, 8)))
}

func TestIntersect(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(5, 5, 15, 15)
	c := NewAABB(20, 20, 30, 30)

	assert.True(t, a.Intersects(b))
	assert.Equal(t, NewAABB(5, 5, 10, 10), a.Intersect(b))

	assert.False(t, a.Intersects(c))
	assert.True(t, a.Intersect(c).Empty())
}

func TestUnionAndTranslate(t *testing.T) {
	a := NewAABB(0, 0, 1, 1)
	b := NewAABB(5, -2, 6, 3)
	assert.Equal(t, NewAABB(0, -2, 6, 3), a.Union(b))
	assert.Equal(t, NewAABB(2, 3, 3, 4), a.Translate(2, 3))
}

func TestCenterAndString(t *testing.T) {
	b := NewAABB(0, 0, 4, 2)
	x, y := b.Center()
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 1.0, y)
	assert.Equal(t, "[0,0 .. 4,2]", b.String())
}
