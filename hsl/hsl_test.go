// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-4

func assertEqual(t *testing.T, want, have HSL) {
	t.Helper()
	assert.InDelta(t, want.H, have.H, tol)
	assert.InDelta(t, want.S, have.S, tol)
	assert.InDelta(t, want.L, have.L, tol)
	assert.InDelta(t, want.A, have.A, tol)
}

func TestHSL(t *testing.T) {
	assert.Equal(t, HSL{100, 0.87, 0.56, 1}, New(100, 0.87, 0.56))

	want := HSL{20.583939, 0.6372093, 0.5576132, 0.9529412}
	assert.Equal(t, want, Model.Convert(want))
	have := Model.Convert(color.RGBA{204, 114, 67, 243}).(HSL)
	assertEqual(t, want, have)

	r, g, b, a := want.RGBA()
	assert.Equal(t, uint32(0xcccc), r)
	assert.Equal(t, uint32(0x7272), g)
	assert.Equal(t, uint32(0x4343), b)
	assert.Equal(t, uint32(0xf3f3), a)

	assert.Equal(t, color.RGBA{204, 114, 67, 243}, want.AsRGBA())

	have = HSL{}
	have.SetUint32(r, g, b, a)
	assertEqual(t, want, have)

	have = HSL{}
	have.SetColor(want)
	assertEqual(t, want, have)

	assert.Equal(t, "hsl(86, 0.54, 0.97)", New(86, 0.54, 0.97).String())
}

func TestConversion(t *testing.T) {
	tests := []struct {
		rgba color.RGBA
		hsl  HSL
	}{
		{color.RGBA{255, 0, 0, 255}, HSL{0, 1, 0.5, 1}},
		{color.RGBA{0, 255, 0, 255}, HSL{120, 1, 0.5, 1}},
		{color.RGBA{0, 0, 255, 255}, HSL{240, 1, 0.5, 1}},
		{color.RGBA{255, 255, 255, 255}, HSL{0, 0, 1, 1}},
		{color.RGBA{0, 0, 0, 255}, HSL{0, 0, 0, 1}},
	}
	for _, test := range tests {
		assertEqual(t, test.hsl, FromColor(test.rgba))
		assert.Equal(t, test.rgba, test.hsl.AsRGBA())
	}
}

// an achromatic color must always come back with hue 0,
// whatever hue it was constructed with
func TestAchromatic(t *testing.T) {
	gray := New(217, 0, 0.5).AsRGBA()
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, gray)
	assertEqual(t, HSL{0, 0, 0.50196078, 1}, FromColor(gray))
}
