// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL color model: hue in degrees 0-360, and
// saturation and lightness as 0-1 fractions. This is the lightness-based
// model used by CSS hsl(...) color codes, not HSB/HSV brightness.
package hsl

import (
	"fmt"
	"image/color"

	"goki.dev/mat32/v2"
)

// HSL represents the Hue [0..360], Saturation [0..1], and Lightness
// [0..1] of a color, with alpha [0..1].
type HSL struct {

	// H is the hue in degrees 0-360
	H float32

	// S is the saturation as a 0-1 fraction
	S float32

	// L is the lightness as a 0-1 fraction
	L float32

	// A is the alpha (opacity) as a 0-1 fraction
	A float32
}

// New returns a new HSL color with the given hue (0-360),
// saturation (0-1), and lightness (0-1), and full alpha.
func New(hue, saturation, lightness float32) HSL {
	return HSL{hue, saturation, lightness, 1}
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	h := HSL{}
	h.SetColor(c)
	return h
}

// FromColor returns the HSL representation of the given color.
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied.
func (h HSL) RGBA() (r, g, b, a uint32) {
	c := h.AsRGBA()
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, uint32(c.A) * 0x101
}

// AsRGBA returns the color as a [color.RGBA], with alpha-premultiplied
// 8-bit channels.
func (h HSL) AsRGBA() color.RGBA {
	r, g, b := ToRGBF32(h.H, h.S, h.L)
	return color.RGBA{
		uint8(r*h.A*255 + 0.5),
		uint8(g*h.A*255 + 0.5),
		uint8(b*h.A*255 + 0.5),
		uint8(h.A*255 + 0.5),
	}
}

// SetUint32 sets the HSL from the given alpha-premultiplied 16-bit
// channels, as returned by the color.Color RGBA method.
func (h *HSL) SetUint32(r, g, b, a uint32) {
	fr := float32(r) / 65535
	fg := float32(g) / 65535
	fb := float32(b) / 65535
	fa := float32(a) / 65535
	if fa > 0 {
		fr /= fa
		fg /= fa
		fb /= fa
	}
	h.H, h.S, h.L = FromRGBF32(fr, fg, fb)
	h.A = fa
}

// SetColor sets the HSL from the given color.
func (h *HSL) SetColor(c color.Color) {
	h.SetUint32(c.RGBA())
}

// String implements fmt.Stringer.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// ToRGBF32 converts the given HSL values (hue 0-360, saturation and
// lightness 0-1) to RGB as 0-1 fractions.
func ToRGBF32(h, s, l float32) (r, g, b float32) {
	if s == 0 { // achromatic
		return l, l, l
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hp := h / 360
	r = rgbHue(p, q, hp+1.0/3.0)
	g = rgbHue(p, q, hp)
	b = rgbHue(p, q, hp-1.0/3.0)
	return
}

// rgbHue computes one RGB channel from the p, q intermediates and the
// channel-offset hue fraction t.
func rgbHue(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// FromRGBF32 converts the given RGB 0-1 fractions to HSL values
// (hue 0-360, saturation and lightness 0-1). An achromatic color
// (saturation 0) always has hue 0.
func FromRGBF32(r, g, b float32) (h, s, l float32) {
	max := mat32.Max(mat32.Max(r, g), b)
	min := mat32.Min(mat32.Min(r, g), b)
	l = (max + min) / 2
	if max == min { // achromatic
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60
	return
}
