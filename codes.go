// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

// ColorCodes are the mutually-exclusive textual color code families
// that a color code string can belong to.
type ColorCodes int32 //enums:enum

const (
	// Invalid is the result for a string that matches no family,
	// matches more than one, or names an unknown keyword.
	Invalid ColorCodes = iota

	// Hex is # followed by exactly 6 hexadecimal digits (#rrggbb).
	Hex

	// ShortHex is # followed by exactly 3 hexadecimal digits (#rgb),
	// with each digit expanded to a full 0-255 channel.
	ShortHex

	// CSSRGB is rgb(r,g,b) with decimal integer channels.
	CSSRGB

	// CSSRGBa is rgba(r,g,b,a) with a decimal 0-1 alpha.
	CSSRGBa

	// CSSHSL is hsl(h,s%,l%) with an integer hue in degrees and
	// percent saturation and lightness.
	CSSHSL

	// CSSHSLa is hsla(h,s%,l%,a) with a decimal 0-1 alpha.
	CSSHSLa

	// CSSKeyword is a named color keyword (e.g., red, CornflowerBlue),
	// matched case-insensitively against the keyword table.
	CSSKeyword
)
