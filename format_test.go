// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		c    Color
		code ColorCodes
		want string
	}{
		{Color{255, 0, 0, 1}, Hex, "#ff0000"},
		{Color{128, 0, 255, 1}, Hex, "#8000ff"},
		{Color{0, 0, 0, 1}, Hex, "#000000"},
		{Color{255, 136, 68, 1}, ShortHex, "#f84"},
		{Color{255, 0, 0, 1}, ShortHex, "#f00"},
		{Color{15, 15, 15, 1}, ShortHex, "#000"}, // truncating, not rounding
		{Color{255, 0, 0, 1}, CSSRGB, "rgb(255,0,0)"},
		{Color{300, -5, 0, 1}, CSSRGB, "rgb(255,0,0)"}, // clamped on output
		{Color{255, 0, 0, 1}, CSSRGBa, "rgba(255,0,0,1)"},
		{Color{255, 0, 0, 0.5}, CSSRGBa, "rgba(255,0,0,0.5)"},
		{Color{255, 0, 0, 1}, CSSHSL, "hsl(0,100%,50%)"},
		{Color{0, 128, 0, 1}, CSSHSL, "hsl(120,100%,25%)"},
		{Color{0, 0, 255, 1}, CSSHSL, "hsl(240,100%,50%)"},
		{Color{255, 255, 255, 1}, CSSHSL, "hsl(0,0%,100%)"}, // achromatic: hue forced to 0
		{Color{128, 128, 128, 1}, CSSHSL, "hsl(0,0%,50%)"},
		{Color{0, 0, 255, 0.5}, CSSHSLa, "hsla(240,100%,50%,0.5)"},
		{Color{255, 0, 0, 1}, CSSKeyword, "Red"},
		{Color{100, 149, 237, 1}, CSSKeyword, "CornflowerBlue"},
	}
	for _, test := range tests {
		s, ok := Format(test.c, test.code)
		assert.True(t, ok, test.want)
		assert.Equal(t, test.want, s)
	}
}

func TestFormatNoRepresentation(t *testing.T) {
	s, ok := Format(Color{255, 0, 0, 1}, Invalid)
	assert.False(t, ok)
	assert.Empty(t, s)

	// 0x123456 is not a keyword hex value
	s, ok = Format(MustFromHex(0x123456, 1), CSSKeyword)
	assert.False(t, ok)
	assert.Empty(t, s)
}

// duplicate keyword hex values must resolve deterministically,
// to the alphabetically first name
func TestFormatKeywordTieBreak(t *testing.T) {
	s, ok := Format(MustFromHex(0x00FFFF, 1), CSSKeyword)
	assert.True(t, ok)
	assert.Equal(t, "Aqua", s)

	s, ok = Format(MustFromHex(0xFF00FF, 1), CSSKeyword)
	assert.True(t, ok)
	assert.Equal(t, "Fuchsia", s)

	s, ok = Format(MustFromHex(0x808080, 1), CSSKeyword)
	assert.True(t, ok)
	assert.Equal(t, "Gray", s)
}

func TestFormatAlpha(t *testing.T) {
	tests := []struct {
		a    float32
		want string
	}{
		{1, "rgba(0,0,0,1)"},
		{0, "rgba(0,0,0,0)"},
		{0.5, "rgba(0,0,0,0.5)"},
		{0.25, "rgba(0,0,0,0.25)"},
		{0.1, "rgba(0,0,0,0.1)"},
	}
	for _, test := range tests {
		s, ok := Format(Color{0, 0, 0, test.a}, CSSRGBa)
		assert.True(t, ok)
		assert.Equal(t, test.want, s)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	code, c, err := Parse("rgb(255,0,0)")
	assert.NoError(t, err)
	assert.Equal(t, CSSRGB, code)
	assert.Equal(t, Color{255, 0, 0, 1}, c)
	s, ok := Format(c, CSSRGB)
	assert.True(t, ok)
	assert.Equal(t, "rgb(255,0,0)", s)

	code, c, err = Parse("hsla(0,0%,100%,0.5)")
	assert.NoError(t, err)
	assert.Equal(t, CSSHSLa, code)
	assert.Equal(t, Color{255, 255, 255, 0.5}, c)
	s, ok = Format(c, Hex)
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", s)

	for _, name := range Keywords.Keys() {
		code, c, err := Parse(name)
		assert.NoError(t, err, name)
		assert.Equal(t, CSSKeyword, code, name)
		s, ok := Format(c, CSSKeyword)
		assert.True(t, ok, name)
		// duplicate hex values resolve to the first name
		first, _ := NameOf(c.Hex())
		assert.Equal(t, first, s, name)
	}
}
