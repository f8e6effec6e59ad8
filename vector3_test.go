// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/math32/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 7}, Vec3(5, 10, 7))
	assert.Equal(t, Vector3{20, 20, 20}, Vector3Scalar(20))

	v := Vector3{}
	v.Set(-1, 7, 3)
	assert.Equal(t, Vector3{-1, 7, 3}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector3{8.12, 8.12, 8.12}, v)

	v.SetZero()
	assert.Equal(t, Vector3{}, v)

	v.SetDim(X, 2)
	v.SetDim(Y, 4)
	v.SetDim(Z, 6)
	assert.Equal(t, Vector3{2, 4, 6}, v)
	assert.Equal(t, float32(4), v.Dim(Y))

	slice := []float32{0, 1, 2, 3, 4}
	v.FromSlice(slice, 1)
	assert.Equal(t, Vector3{1, 2, 3}, v)
	v.ToSlice(slice, 2)
	assert.Equal(t, []float32{0, 1, 1, 2, 3}, slice)

	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestVector3Math(t *testing.T) {
	v := Vec3(1, 2, 3)
	o := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), v.Add(o))
	assert.Equal(t, Vec3(2, 3, 4), v.AddScalar(1))
	assert.Equal(t, Vec3(-3, 7, -3), v.Sub(o))
	assert.Equal(t, Vec3(0, 1, 2), v.SubScalar(1))
	assert.Equal(t, Vec3(4, -10, 18), v.Mul(o))
	assert.Equal(t, Vec3(2, 4, 6), v.MulScalar(2))
	assert.Equal(t, Vec3(1, 2, 3), v.MulScalar(2).DivScalar(2))
	assert.Equal(t, Vector3{}, v.DivScalar(0))
	tolAssertEqualVector3(t, standardTol, Vec3(0.25, -0.4, 0.5), v.Div(o))

	w := v
	w.SetAdd(o)
	assert.Equal(t, v.Add(o), w)
	w = v
	w.SetSub(o)
	assert.Equal(t, v.Sub(o), w)
	w = v
	w.SetMulScalar(3)
	assert.Equal(t, v.MulScalar(3), w)
	w = v
	w.SetDivScalar(0)
	assert.Equal(t, Vector3{}, w)

	assert.Equal(t, Vec3(1, -5, 3), v.Min(o))
	assert.Equal(t, Vec3(4, 2, 6), v.Max(o))
	w = v
	w.SetMin(o)
	assert.Equal(t, v.Min(o), w)
	w = v
	w.SetMax(o)
	assert.Equal(t, v.Max(o), w)

	w = Vec3(-1, 5, 2)
	w.Clamp(Vec3(0, 0, 0), Vec3(4, 4, 4))
	assert.Equal(t, Vec3(0, 4, 2), w)
	w = Vec3(-3, 0.5, 7)
	w.ClampScalar(0, 1)
	assert.Equal(t, Vec3(0, 0.5, 1), w)

	assert.Equal(t, Vec3(-1, -2, -3), v.Negate())
	assert.Equal(t, Vec3(4, 5, 6), o.Abs())
	assert.Equal(t, Vec3(1, -2, 2), Vec3(1.2, -1.5, 1.5).Round())
	assert.Equal(t, Vec3(1, -2, 1), Vec3(1.2, -1.5, 1.5).Floor())
	assert.Equal(t, Vec3(2, -1, 2), Vec3(1.2, -1.5, 1.5).Ceil())

	assert.True(t, v.IsEqual(Vec3(1, 2, 3)))
	assert.False(t, v.IsEqual(o))
}

func TestVector3Norm(t *testing.T) {
	v := Vec3(1, 2, 2)

	tolassert.EqualTol(t, 9, v.LengthSquared(), standardTol)
	tolassert.EqualTol(t, 3, v.Length(), standardTol)
	tolAssertEqualVector3(t, standardTol, Vec3(1.0/3, 2.0/3, 2.0/3), v.Normal())
	tolassert.EqualTol(t, 1, v.Normal().Length(), standardTol)

	w := v
	w.SetNormal()
	tolAssertEqualVector3(t, standardTol, v.Normal(), w)

	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	o := Vec3(4, 2, 2)
	tolassert.EqualTol(t, 12, v.Dot(o), standardTol)
	tolassert.EqualTol(t, 3, v.DistanceTo(Vec3(1, 2, 5)), standardTol)
	tolassert.EqualTol(t, 9, v.DistanceToSquared(Vec3(1, 2, 5)), standardTol)

	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	z := Vec3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, z.Negate(), y.Cross(x))

	tolAssertEqualVector3(t, standardTol, Vec3(0.5, 1, 1.5), Vector3{}.Lerp(v, 0.5))
	assert.Equal(t, v, Vector3{}.Lerp(v, 1))
	w = Vec3(2, 4, 6)
	w.SetLerp(v, 1)
	assert.Equal(t, v, w)
}
