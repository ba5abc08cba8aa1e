// Package geom holds plain geometric value types used by the continuous,
// interval-based constraints layered on top of the discrete solver core.
// Nothing here narrows, propagates, or searches.
package geom

import (
	"fmt"
	"math"
)

// AABB is an axis-aligned bounding box given by its minimum and maximum
// corners. The zero value is the empty box at the origin. Boxes are plain
// values: every operation returns a new box.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewAABB builds a box from two opposite corners, in either order.
func NewAABB(x1, y1, x2, y2 float64) AABB {
	return AABB{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// Width returns the extent along the x axis.
func (b AABB) Width() float64 { return b.MaxX - b.MinX }

// Height returns the extent along the y axis.
func (b AABB) Height() float64 { return b.MaxY - b.MinY }

// Area returns the covered area; an inverted box has zero area.
func (b AABB) Area() float64 {
	if b.Empty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Empty reports whether the box covers no area.
func (b AABB) Empty() bool { return b.MinX >= b.MaxX || b.MinY >= b.MaxY }

// Center returns the box's midpoint.
func (b AABB) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Contains reports whether the point (x, y) lies inside or on the boundary.
func (b AABB) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// ContainsBox reports whether o lies entirely within b.
func (b AABB) ContainsBox(o AABB) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// Intersects reports whether b and o share any area.
func (b AABB) Intersects(o AABB) bool {
	return !b.Intersect(o).Empty()
}

// Intersect returns the overlap of b and o; the result is Empty when they do
// not overlap.
func (b AABB) Intersect(o AABB) AABB {
	return AABB{
		MinX: math.Max(b.MinX, o.MinX),
		MinY: math.Max(b.MinY, o.MinY),
		MaxX: math.Min(b.MaxX, o.MaxX),
		MaxY: math.Min(b.MaxY, o.MaxY),
	}
}

// Union returns the smallest box covering both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Translate returns the box shifted by (dx, dy).
func (b AABB) Translate(dx, dy float64) AABB {
	return AABB{MinX: b.MinX + dx, MinY: b.MinY + dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}

// String renders the box as "[minX,minY .. maxX,maxY]".
func (b AABB) String() string {
	return fmt.Sprintf("[%g,%g .. %g,%g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
