// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalars(t *testing.T) {
	assert.Equal(t, float32(2), Abs(-2))
	assert.Equal(t, float32(2), Abs(2))
	assert.Equal(t, float32(-1), Sign(-0.5))
	assert.Equal(t, float32(1), Sign(0.5))
	assert.Equal(t, float32(3), Sqrt(9))

	assert.Equal(t, float32(1), Floor(1.8))
	assert.Equal(t, float32(-2), Floor(-1.2))
	assert.Equal(t, float32(2), Ceil(1.2))
	assert.Equal(t, float32(2), Round(1.5))
	assert.Equal(t, float32(-2), Round(-1.5))
	assert.Equal(t, float32(1), Trunc(1.8))
	assert.Equal(t, float32(-1), Trunc(-1.8))

	assert.Equal(t, float32(1), Min(1, 2))
	assert.Equal(t, float32(2), Max(1, 2))

	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp(5, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))

	assert.True(t, IsInf(Infinity, 1))
	assert.True(t, IsInf(Inf(-1), -1))
	assert.False(t, IsInf(MaxFloat32, 0))
	assert.True(t, IsNaN(Sqrt(-1)))
	assert.False(t, IsNaN(0))
}
