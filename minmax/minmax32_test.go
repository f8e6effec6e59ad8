// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	mr := F32{}
	mr.Set(2, 6)
	assert.True(t, mr.IsValid())
	assert.Equal(t, float32(4), mr.Range())
	assert.Equal(t, float32(0.25), mr.Scale())
	assert.Equal(t, float32(4), mr.Midpoint())

	assert.True(t, mr.InRange(2))
	assert.True(t, mr.InRange(6))
	assert.True(t, mr.InRange(3.5))
	assert.False(t, mr.InRange(1))
	assert.False(t, mr.InRange(7))
	assert.True(t, mr.IsLow(1))
	assert.False(t, mr.IsLow(2))
	assert.True(t, mr.IsHigh(7))
	assert.False(t, mr.IsHigh(6))

	assert.Equal(t, float32(2), mr.ClipValue(0))
	assert.Equal(t, float32(6), mr.ClipValue(10))
	assert.Equal(t, float32(3), mr.ClipValue(3))
	assert.Equal(t, float32(0.5), mr.NormValue(4))
	assert.Equal(t, float32(0), mr.NormValue(1))
	assert.Equal(t, float32(1), mr.NormValue(8))
	assert.Equal(t, float32(4), mr.ProjValue(0.5))
	assert.Equal(t, float32(0), mr.ClipNormValue(0))
	assert.Equal(t, float32(1), mr.ClipNormValue(8))

	ivr := F32{}
	ivr.SetInfinity()
	assert.False(t, ivr.IsValid())
	assert.True(t, ivr.FitValInRange(3))
	assert.True(t, ivr.FitValInRange(-1))
	assert.Equal(t, F32{-1, 3}, ivr)
	assert.False(t, ivr.FitValInRange(2))

	fr := F32{1, 2}
	assert.True(t, fr.FitInRange(F32{0, 5}))
	assert.Equal(t, F32{0, 5}, fr)
	assert.False(t, fr.FitInRange(F32{1, 2}))
}

func TestF32Overlaps(t *testing.T) {
	a := F32{0, 1}

	assert.True(t, a.Overlaps(F32{0.5, 2}))
	assert.True(t, a.Overlaps(F32{-1, 0.5}))
	assert.True(t, a.Overlaps(F32{-1, 2}))
	assert.True(t, a.Overlaps(F32{0.25, 0.75}))
	assert.True(t, a.Overlaps(a))

	// touching at an endpoint counts
	assert.True(t, a.Overlaps(F32{1, 2}))
	assert.True(t, a.Overlaps(F32{-1, 0}))

	assert.False(t, a.Overlaps(F32{1.5, 2}))
	assert.False(t, a.Overlaps(F32{-2, -1}))

	// symmetry
	b := F32{1, 2}
	c := F32{2.5, 3}
	assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	assert.Equal(t, a.Overlaps(c), c.Overlaps(a))
}
