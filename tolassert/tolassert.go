// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are about equal to each other,
// using a standard tolerance of 1.0e-7.
func Equal(t *testing.T, expected, actual float32, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 1.0e-7, msgAndArgs...)
}

// EqualTol asserts that the two numbers are about equal to each other,
// using the given tolerance.
func EqualTol(t *testing.T, expected, actual, tol float32, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

// EqualTolSlice asserts that the values in the two slices are about equal
// to each other, using the given tolerance.
func EqualTolSlice(t *testing.T, expected, actual []float32, tol float32, msgAndArgs ...any) bool {
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	res := true
	for i, ev := range expected {
		if !EqualTol(t, ev, actual[i], tol, msgAndArgs...) {
			res = false
		}
	}
	return res
}
