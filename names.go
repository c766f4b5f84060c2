// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/image/colornames
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"errors"
	"strings"

	"goki.dev/grr"
	"goki.dev/ordmap"
)

// Keywords is the table of named color keywords defined in the CSS
// spec, in alphabetical order, mapping display names to packed 24-bit
// hex values. It is built once and never mutated, so it is safe for
// concurrent reads. Lookups by name are case-insensitive (see
// [FromName]); several hex values have more than one name (Aqua/Cyan,
// Fuchsia/Magenta, the gray/grey pairs), and [NameOf] always returns
// the alphabetically first one.
var Keywords = ordmap.Make([]ordmap.KeyVal[string, int]{
	{Key: "AliceBlue", Val: 0xF0F8FF},
	{Key: "AntiqueWhite", Val: 0xFAEBD7},
	{Key: "Aqua", Val: 0x00FFFF},
	{Key: "AquaMarine", Val: 0x7FFFD4},
	{Key: "Azure", Val: 0xF0FFFF},
	{Key: "Beige", Val: 0xF5F5DC},
	{Key: "Bisque", Val: 0xFFE4C4},
	{Key: "Black", Val: 0x000000},
	{Key: "BlanchedAlmond", Val: 0xFFEBCD},
	{Key: "Blue", Val: 0x0000FF},
	{Key: "BlueViolet", Val: 0x8A2BE2},
	{Key: "Brown", Val: 0xA52A2A},
	{Key: "BurlyWood", Val: 0xDEB887},
	{Key: "CadetBlue", Val: 0x5F9EA0},
	{Key: "Chartreuse", Val: 0x7FFF00},
	{Key: "Chocolate", Val: 0xD2691E},
	{Key: "Coral", Val: 0xFF7F50},
	{Key: "CornflowerBlue", Val: 0x6495ED},
	{Key: "Cornsilk", Val: 0xFFF8DC},
	{Key: "Crimson", Val: 0xDC143C},
	{Key: "Cyan", Val: 0x00FFFF},
	{Key: "DarkBlue", Val: 0x00008B},
	{Key: "DarkCyan", Val: 0x008B8B},
	{Key: "DarkGoldenRod", Val: 0xB8860B},
	{Key: "DarkGray", Val: 0xA9A9A9},
	{Key: "DarkGreen", Val: 0x006400},
	{Key: "DarkGrey", Val: 0xA9A9A9},
	{Key: "DarkKhaki", Val: 0xBDB76B},
	{Key: "DarkMagenta", Val: 0x8B008B},
	{Key: "DarkOliveGreen", Val: 0x556B2F},
	{Key: "DarkOrange", Val: 0xFF8C00},
	{Key: "DarkOrchid", Val: 0x9932CC},
	{Key: "DarkRed", Val: 0x8B0000},
	{Key: "DarkSalmon", Val: 0xE9967A},
	{Key: "DarkSeaGreen", Val: 0x8FBC8F},
	{Key: "DarkSlateBlue", Val: 0x483D8B},
	{Key: "DarkSlateGray", Val: 0x2F4F4F},
	{Key: "DarkSlateGrey", Val: 0x2F4F4F},
	{Key: "DarkTurquoise", Val: 0x00CED1},
	{Key: "DarkViolet", Val: 0x9400D3},
	{Key: "DeepPink", Val: 0xFF1493},
	{Key: "DeepSkyBlue", Val: 0x00BFFF},
	{Key: "DimGray", Val: 0x696969},
	{Key: "DimGrey", Val: 0x696969},
	{Key: "DodgerBlue", Val: 0x1E90FF},
	{Key: "FireBrick", Val: 0xB22222},
	{Key: "FloralWhite", Val: 0xFFFAF0},
	{Key: "ForestGreen", Val: 0x228B22},
	{Key: "Fuchsia", Val: 0xFF00FF},
	{Key: "Gainsboro", Val: 0xDCDCDC},
	{Key: "GhostWhite", Val: 0xF8F8FF},
	{Key: "Gold", Val: 0xFFD700},
	{Key: "GoldenRod", Val: 0xDAA520},
	{Key: "Gray", Val: 0x808080},
	{Key: "Green", Val: 0x008000},
	{Key: "GreenYellow", Val: 0xADFF2F},
	{Key: "Grey", Val: 0x808080},
	{Key: "HoneyDew", Val: 0xF0FFF0},
	{Key: "HotPink", Val: 0xFF69B4},
	{Key: "IndianRed", Val: 0xCD5C5C},
	{Key: "Indigo", Val: 0x4B0082},
	{Key: "Ivory", Val: 0xFFFFF0},
	{Key: "Khaki", Val: 0xF0E68C},
	{Key: "Lavender", Val: 0xE6E6FA},
	{Key: "LavenderBlush", Val: 0xFFF0F5},
	{Key: "LawnGreen", Val: 0x7CFC00},
	{Key: "LemonChiffon", Val: 0xFFFACD},
	{Key: "LightBlue", Val: 0xADD8E6},
	{Key: "LightCoral", Val: 0xF08080},
	{Key: "LightCyan", Val: 0xE0FFFF},
	{Key: "LightGoldenRodYellow", Val: 0xFAFAD2},
	{Key: "LightGray", Val: 0xD3D3D3},
	{Key: "LightGreen", Val: 0x90EE90},
	{Key: "LightGrey", Val: 0xD3D3D3},
	{Key: "LightPink", Val: 0xFFB6C1},
	{Key: "LightSalmon", Val: 0xFFA07A},
	{Key: "LightSeaGreen", Val: 0x20B2AA},
	{Key: "LightSkyBlue", Val: 0x87CEFA},
	{Key: "LightSlateGray", Val: 0x778899},
	{Key: "LightSlateGrey", Val: 0x778899},
	{Key: "LightSteelBlue", Val: 0xB0C4DE},
	{Key: "LightYellow", Val: 0xFFFFE0},
	{Key: "Lime", Val: 0x00FF00},
	{Key: "LimeGreen", Val: 0x32CD32},
	{Key: "Linen", Val: 0xFAF0E6},
	{Key: "Magenta", Val: 0xFF00FF},
	{Key: "Maroon", Val: 0x800000},
	{Key: "MediumAquaMarine", Val: 0x66CDAA},
	{Key: "MediumBlue", Val: 0x0000CD},
	{Key: "MediumOrchid", Val: 0xBA55D3},
	{Key: "MediumPurple", Val: 0x9370DB},
	{Key: "MediumSeaGreen", Val: 0x3CB371},
	{Key: "MediumSlateBlue", Val: 0x7B68EE},
	{Key: "MediumSpringGreen", Val: 0x00FA9A},
	{Key: "MediumTurquoise", Val: 0x48D1CC},
	{Key: "MediumVioletRed", Val: 0xC71585},
	{Key: "MidnightBlue", Val: 0x191970},
	{Key: "MintCream", Val: 0xF5FFFA},
	{Key: "MistyRose", Val: 0xFFE4E1},
	{Key: "Moccasin", Val: 0xFFE4B5},
	{Key: "NavajoWhite", Val: 0xFFDEAD},
	{Key: "Navy", Val: 0x000080},
	{Key: "OldLace", Val: 0xFDF5E6},
	{Key: "Olive", Val: 0x808000},
	{Key: "OliveDrab", Val: 0x6B8E23},
	{Key: "Orange", Val: 0xFFA500},
	{Key: "OrangeRed", Val: 0xFF4500},
	{Key: "Orchid", Val: 0xDA70D6},
	{Key: "PaleGoldenRod", Val: 0xEEE8AA},
	{Key: "PaleGreen", Val: 0x98FB98},
	{Key: "PaleTurquoise", Val: 0xAFEEEE},
	{Key: "PaleVioletRed", Val: 0xDB7093},
	{Key: "PapayaWhip", Val: 0xFFEFD5},
	{Key: "PeachPuff", Val: 0xFFDAB9},
	{Key: "Peru", Val: 0xCD853F},
	{Key: "Pink", Val: 0xFFC0CB},
	{Key: "Plum", Val: 0xDDA0DD},
	{Key: "PowderBlue", Val: 0xB0E0E6},
	{Key: "Purple", Val: 0x800080},
	{Key: "RebeccaPurple", Val: 0x663399},
	{Key: "Red", Val: 0xFF0000},
	{Key: "RosyBrown", Val: 0xBC8F8F},
	{Key: "RoyalBlue", Val: 0x4169E1},
	{Key: "SaddleBrown", Val: 0x8B4513},
	{Key: "Salmon", Val: 0xFA8072},
	{Key: "SandyBrown", Val: 0xF4A460},
	{Key: "SeaGreen", Val: 0x2E8B57},
	{Key: "SeaShell", Val: 0xFFF5EE},
	{Key: "Sienna", Val: 0xA0522D},
	{Key: "Silver", Val: 0xC0C0C0},
	{Key: "SkyBlue", Val: 0x87CEEB},
	{Key: "SlateBlue", Val: 0x6A5ACD},
	{Key: "SlateGray", Val: 0x708090},
	{Key: "SlateGrey", Val: 0x708090},
	{Key: "Snow", Val: 0xFFFAFA},
	{Key: "SpringGreen", Val: 0x00FF7F},
	{Key: "SteelBlue", Val: 0x4682B4},
	{Key: "Tan", Val: 0xD2B48C},
	{Key: "Teal", Val: 0x008080},
	{Key: "Thistle", Val: 0xD8BFD8},
	{Key: "Tomato", Val: 0xFF6347},
	{Key: "Turquoise", Val: 0x40E0D0},
	{Key: "Violet", Val: 0xEE82EE},
	{Key: "Wheat", Val: 0xF5DEB3},
	{Key: "White", Val: 0xFFFFFF},
	{Key: "WhiteSmoke", Val: 0xF5F5F5},
	{Key: "Yellow", Val: 0xFFFF00},
	{Key: "YellowGreen", Val: 0x9ACD32},
})

// hexByLowerName indexes [Keywords] by lowercase name for the
// case-insensitive lookups.
var hexByLowerName = func() map[string]int {
	m := make(map[string]int, Keywords.Len())
	for _, kv := range Keywords.Order {
		m[strings.ToLower(kv.Key)] = kv.Val
	}
	return m
}()

// FromName returns the color for the given CSS keyword name,
// compared case-insensitively. It returns an error if the name is
// not found; see [MustFromName] and [LogFromName] for versions
// that do not return an error.
func FromName(name string) (Color, error) {
	hex, ok := hexByLowerName[strings.ToLower(name)]
	if !ok {
		return Color{}, errors.New("colorcode.FromName: name not found: " + name)
	}
	return Color{R: hex >> 16 & 0xFF, G: hex >> 8 & 0xFF, B: hex & 0xFF, A: 1}, nil
}

// MustFromName returns the color for the given CSS keyword name,
// panicking if the name is not found; see [FromName] for a version
// that returns an error.
func MustFromName(name string) Color {
	return grr.Must1(FromName(name))
}

// LogFromName returns the color for the given CSS keyword name,
// logging an error if the name is not found; see [FromName] for a
// version that returns an error.
func LogFromName(name string) Color {
	return grr.Log1(FromName(name))
}

// NameOf returns the first keyword name in [Keywords] whose hex value
// equals the given packed 24-bit hex, in the table's alphabetical
// order, so duplicate hex values always resolve to the same name.
// It reports false if no keyword maps to the value.
func NameOf(hex int) (string, bool) {
	for _, kv := range Keywords.Order {
		if kv.Val == hex {
			return kv.Key, true
		}
	}
	return "", false
}

// Map returns the full mapping from keyword names to colors, derived
// from [Keywords], for enumerating all recognized keyword colors.
func Map() map[string]Color {
	m := make(map[string]Color, Keywords.Len())
	for _, kv := range Keywords.Order {
		m[kv.Key] = Color{R: kv.Val >> 16 & 0xFF, G: kv.Val >> 8 & 0xFF, B: kv.Val & 0xFF, A: 1}
	}
	return m
}
