// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"

	"cogentcore.org/math32/minmax"
)

// Box3 is a 3D axis-aligned bounding box defined by two opposite corner
// points: the point with minimum coordinates and the point with maximum
// coordinates. A box is valid when Min <= Max on every dimension; the
// constructors establish this ordering from corners given in any order.
// The corner fields are exported for direct bulk updates, which is the one
// way the ordering can be broken: nothing re-normalizes after a field write,
// so methods such as [Box3.IntersectsBox] that require a valid box are then
// unreliable, and the length accessors can go negative.
// The zero value is a box with both corners at the origin.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// NewBox3 returns a new [Box3] spanning the two given corner points,
// which can be in any order: Min and Max are set to the component-wise
// minimum and maximum of the two.
func NewBox3(a, b Vector3) Box3 {
	return Box3{a.Min(b), a.Max(b)}
}

// B3 returns a new [Box3] spanning corners (x0, y0, z0) and (x1, y1, z1),
// which can be in any order, as in [NewBox3].
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return NewBox3(Vec3(x0, y0, z0), Vec3(x1, y1, z1))
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity),
// suitable for iteratively expanding by points or boxes.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// IsValid returns true if Min <= Max on every dimension.
func (b Box3) IsValid() bool {
	return !b.IsEmpty()
}

// Set sets this bounding box minimum and maximum coordinates directly,
// without re-ordering (see [NewBox3] for that).
// If either min or max are nil, then corresponding values are set to +/- Infinity.
func (b *Box3) Set(min, max *Vector3) {
	if min != nil {
		b.Min = *min
	} else {
		b.Min.SetScalar(Infinity)
	}
	if max != nil {
		b.Max = *max
	} else {
		b.Max.SetScalar(-Infinity)
	}
}

// SetFromPoints sets this bounding box from the specified array of points.
func (b *Box3) SetFromPoints(points []Vector3) {
	b.SetEmpty()
	b.ExpandByPoints(points)
}

// SetFromCenterAndSize sets this bounding box from a center point and size.
// Size is a vector from the minimum point to the maximum point.
func (b *Box3) SetFromCenterAndSize(center, size Vector3) {
	halfSize := size.MulScalar(0.5)
	b.Min = center.Sub(halfSize)
	b.Max = center.Add(halfSize)
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByPoints may expand this bounding box from the specified array of points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for i := 0; i < len(points); i++ {
		b.ExpandByPoint(points[i])
	}
}

// ExpandByBox may expand this bounding box to include the specified box.
func (b *Box3) ExpandByBox(box Box3) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByVector expands this bounding box by the specified vector,
// subtracting from min and adding to max.
func (b *Box3) ExpandByVector(vector Vector3) {
	b.Min.SetSub(vector)
	b.Max.SetAdd(vector)
}

// ExpandByScalar expands this bounding box by the specified scalar,
// subtracting from min and adding to max.
func (b *Box3) ExpandByScalar(scalar float32) {
	b.Min.SetSubScalar(scalar)
	b.Max.SetAddScalar(scalar)
}

//////////////////////////////////////////////////////////////////////
//  Measures

// XLength returns the extent of the box along the X dimension: Max.X - Min.X.
// It is negative if the box is invalid on that dimension.
func (b Box3) XLength() float32 {
	return b.Max.X - b.Min.X
}

// YLength returns the extent of the box along the Y dimension: Max.Y - Min.Y.
// It is negative if the box is invalid on that dimension.
func (b Box3) YLength() float32 {
	return b.Max.Y - b.Min.Y
}

// ZLength returns the extent of the box along the Z dimension: Max.Z - Min.Z.
// It is negative if the box is invalid on that dimension.
func (b Box3) ZLength() float32 {
	return b.Max.Z - b.Min.Z
}

// Size returns the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the bounding box:
// the midpoint between the two corners.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Size().MulScalar(0.5))
}

// Volume returns the volume of this bounding box:
// the product of its extents along each dimension.
func (b Box3) Volume() float32 {
	sz := b.Size()
	return sz.X * sz.Y * sz.Z
}

// Range returns the extent of this box along the given dimension
// as a [minmax.F32] interval.
func (b Box3) Range(dim Dims) minmax.F32 {
	return minmax.F32{Min: b.Min.Dim(dim), Max: b.Max.Dim(dim)}
}

//////////////////////////////////////////////////////////////////////
//  Merge / union algebra

// Merge expands this box in place to the smallest box containing
// both itself and the other box, taking the component-wise min / max
// across the corners of the two.
func (b *Box3) Merge(other Box3) {
	b.Min.SetMin(other.Min)
	b.Max.SetMax(other.Max)
}

// Union returns the smallest box containing both this box and the
// other box, leaving this box unchanged (see [Box3.Merge] for the
// in-place version).
func (b Box3) Union(other Box3) Box3 {
	b.Merge(other)
	return b
}

// Sub returns this box with the given vector subtracted from both
// corners: a translation of the whole box by the negated vector.
func (b Box3) Sub(v Vector3) Box3 {
	return Box3{b.Min.Sub(v), b.Max.Sub(v)}
}

// Translate returns the position of this box translated by the given offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{b.Min.Add(offset), b.Max.Add(offset)}
}

//////////////////////////////////////////////////////////////////////
//  Containment and intersection

// IsEqual returns whether this box has the same Min and Max corners as the
// other box. Box3 values are also directly comparable with ==.
func (b Box3) IsEqual(other Box3) bool {
	return b.Min.IsEqual(other.Min) && b.Max.IsEqual(other.Max)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// ContainsBox returns if this bounding box contains the other box.
func (b Box3) ContainsBox(box Box3) bool {
	return (b.Min.X <= box.Min.X) && (box.Max.X <= b.Max.X) &&
		(b.Min.Y <= box.Min.Y) && (box.Max.Y <= b.Max.Y) &&
		(b.Min.Z <= box.Min.Z) && (box.Max.Z <= b.Max.Z)
}

// IntersectsBox returns whether the other box overlaps this one:
// the [Min, Max] intervals of the two boxes overlap on every dimension,
// with boxes that merely touch counting as intersecting.
// Both boxes must be valid (Min <= Max on every dimension);
// the result is meaningless otherwise.
func (b Box3) IntersectsBox(other Box3) bool {
	// using 6 splitting planes to rule out intersections.
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}

// Intersect returns the intersection with other box.
func (b Box3) Intersect(other Box3) Box3 {
	other.Min.SetMax(b.Min)
	other.Max.SetMin(b.Max)
	return other
}

// ClampPoint returns a new point which is the specified point clamped inside this box.
func (b Box3) ClampPoint(point Vector3) Vector3 {
	point.Clamp(b.Min, b.Max)
	return point
}

// DistanceToPoint returns the distance from this box to the specified point.
func (b Box3) DistanceToPoint(point Vector3) float32 {
	clamp := b.ClampPoint(point)
	return clamp.Sub(point).Length()
}

func (b Box3) String() string {
	return fmt.Sprintf("Min: %v, Max: %v", b.Min, b.Max)
}
