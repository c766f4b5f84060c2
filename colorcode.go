// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorcode converts between CSS3-style textual color codes
// (hex, short hex, rgb/rgba, hsl/hsla, and named keywords) and RGB
// color values. [Parse] classifies a string into one of the supported
// [ColorCodes] families and extracts the color; [Format] renders a
// color back into the textual form of a requested family.
package colorcode

//go:generate enumgen

import (
	"fmt"
	"image/color"
	"strconv"

	"goki.dev/grr"
	"goki.dev/mat32/v2"
)

// Color is a normalized color value: red, green, and blue channels as
// 0-255 integers, and alpha as a 0-1 fraction. It is a pure value with
// no identity, freely copyable. Channels parsed from rgb(...) codes are
// passed through without clamping, so R, G, and B can hold out-of-range
// values; all formatting clamps them back to 0-255.
type Color struct {

	// R is the red channel, conceptually 0-255
	R int

	// G is the green channel, conceptually 0-255
	G int

	// B is the blue channel, conceptually 0-255
	B int

	// A is the alpha (opacity) as a 0-1 fraction
	A float32
}

// FromHex returns the color with the given packed 24-bit hex value
// (e.g., 0xFF0000 for red) and alpha as a 0-1 fraction. It returns an
// error if hex is outside [0, 0xFFFFFF]; see [MustFromHex] and
// [LogFromHex] for versions that do not return an error.
func FromHex(hex int, alpha float32) (Color, error) {
	if hex < 0 || hex > 0xFFFFFF {
		return Color{}, fmt.Errorf("colorcode.FromHex: value %X out of 24-bit range", hex)
	}
	return Color{R: hex >> 16 & 0xFF, G: hex >> 8 & 0xFF, B: hex & 0xFF, A: alpha}, nil
}

// MustFromHex returns the color with the given packed 24-bit hex value
// and alpha. It panics if hex is out of range; see [FromHex] for a
// version that returns an error.
func MustFromHex(hex int, alpha float32) Color {
	return grr.Must1(FromHex(hex, alpha))
}

// LogFromHex returns the color with the given packed 24-bit hex value
// and alpha. It logs an error if hex is out of range; see [FromHex]
// for a version that returns an error.
func LogFromHex(hex int, alpha float32) Color {
	return grr.Log1(FromHex(hex, alpha))
}

// FromRGBA returns the normalized color for the given [color.Color],
// reading the channels back as non-premultiplied 0-255 integers.
func FromRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: int(n.R), G: int(n.G), B: int(n.B), A: float32(n.A) / 255}
}

// Hex returns the color as a packed 24-bit integer (0xRRGGBB),
// from the clamped 0-255 channels. Alpha is not included.
func (c Color) Hex() int {
	r, g, b := c.rgb8()
	return r<<16 | g<<8 | b
}

// AsNRGBA returns the color as a non-alpha-premultiplied
// [color.NRGBA], with channels clamped to 0-255.
func (c Color) AsNRGBA() color.NRGBA {
	r, g, b := c.rgb8()
	a := mat32.Clamp(c.A, 0, 1)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(mat32.Round(a * 255))}
}

// AsRGBA returns the color as a standard alpha-premultiplied
// [color.RGBA], with channels clamped to 0-255.
func (c Color) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.AsNRGBA()).(color.RGBA)
}

// String returns the color in rgba(r,g,b,a) form, for debugging;
// use [Format] for canonical color code output.
func (c Color) String() string {
	return "rgba(" + strconv.Itoa(c.R) + "," + strconv.Itoa(c.G) + "," + strconv.Itoa(c.B) + "," + alphaString(c.A) + ")"
}

// rgb8 returns the channels clamped to the 0-255 range.
func (c Color) rgb8() (r, g, b int) {
	r = int(mat32.Clamp(float32(c.R), 0, 255))
	g = int(mat32.Clamp(float32(c.G), 0, 255))
	b = int(mat32.Clamp(float32(c.B), 0, 255))
	return
}
