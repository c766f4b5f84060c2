// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"fmt"
	"strconv"

	"goki.dev/colorcode/hsl"
	"goki.dev/mat32/v2"
)

// Format renders the given color as a string of the given [ColorCodes]
// family, reading the channels back as clamped 0-255 integers. The
// second return value reports whether the color has a representation
// in that family: it is false for [Invalid], and for [CSSKeyword] when
// no keyword maps to the color's hex value.
func Format(c Color, code ColorCodes) (string, bool) {
	r, g, b := c.rgb8()
	switch code {
	case Hex:
		return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
	case ShortHex:
		// truncating single-digit approximation, not nearest
		return fmt.Sprintf("#%x%x%x", r/16, g/16, b/16), true
	case CSSRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b), true
	case CSSRGBa:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, alphaString(c.A)), true
	case CSSHSL, CSSHSLa:
		h, s, l := hsl.FromRGBF32(float32(r)/255, float32(g)/255, float32(b)/255)
		hi := int(mat32.Round(h))
		si := int(mat32.Round(s * 100))
		li := int(mat32.Round(l * 100))
		if code == CSSHSL {
			return fmt.Sprintf("hsl(%d,%d%%,%d%%)", hi, si, li), true
		}
		return fmt.Sprintf("hsla(%d,%d%%,%d%%,%s)", hi, si, li, alphaString(c.A)), true
	case CSSKeyword:
		return NameOf(c.Hex())
	}
	return "", false
}

// alphaString formats an alpha fraction in the shortest decimal form,
// locale-independent: 1 rather than 1.000000, 0.5 rather than 0.50.
func alphaString(a float32) string {
	return strconv.FormatFloat(float64(a), 'g', -1, 32)
}
