// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"goki.dev/colorcode/hsl"
	"goki.dev/grr"
	"goki.dev/laser"
	"goki.dev/mat32/v2"
)

// grammars are the anchored full-string patterns for each color code
// family, tried independently during classification. The families are
// mutually exclusive by construction, but the dispatcher still requires
// exactly one of them to match.
var grammars = []struct {
	code ColorCodes
	re   *regexp.Regexp
}{
	{Hex, regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)},
	{ShortHex, regexp.MustCompile(`^#[0-9A-Fa-f]{3}$`)},
	{CSSRGB, regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)},
	{CSSRGBa, regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([0-9.]+)\s*\)$`)},
	{CSSHSL, regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*\)$`)},
	{CSSHSLa, regexp.MustCompile(`^hsla\(\s*(\d{1,3})\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)%\s*,\s*([0-9.]+)\s*\)$`)},
	{CSSKeyword, regexp.MustCompile(`^[A-Za-z]+$`)},
}

// Parse classifies the given color code string into one of the
// [ColorCodes] families and returns the color it describes.
// The family tag is always returned, also on error ([Invalid]).
// Leading and trailing whitespace is ignored, as is whitespace
// between the tokens inside rgb(...) and hsl(...) parentheses.
// See [MustParse] and [LogParse] for versions that do not
// return an error.
func Parse(str string) (ColorCodes, Color, error) {
	str = strings.TrimSpace(str)
	code, fields := classify(str)
	switch code {
	case Hex:
		hex, _ := strconv.ParseUint(str[1:], 16, 32)
		return code, Color{R: int(hex >> 16 & 0xFF), G: int(hex >> 8 & 0xFF), B: int(hex & 0xFF), A: 1}, nil
	case ShortHex:
		var ch [3]int
		for i := 0; i < 3; i++ {
			nib, _ := strconv.ParseUint(str[1+i:2+i], 16, 8)
			ch[i] = int(mat32.Round(float32(nib) * 255 / 15))
		}
		return code, Color{R: ch[0], G: ch[1], B: ch[2], A: 1}, nil
	case CSSRGB, CSSRGBa:
		c := Color{R: intField(fields[0]), G: intField(fields[1]), B: intField(fields[2]), A: 1}
		if code == CSSRGBa {
			c.A = floatField(fields[3], 1)
		}
		return code, c, nil
	case CSSHSL, CSSHSLa:
		hue := float32(intField(fields[0]))
		sat := floatField(fields[1], 0) / 100
		light := floatField(fields[2], 0) / 100
		rgb := hsl.New(hue, sat, light).AsRGBA()
		c := Color{R: int(rgb.R), G: int(rgb.G), B: int(rgb.B), A: 1}
		if code == CSSHSLa {
			c.A = floatField(fields[3], 1)
		}
		return code, c, nil
	case CSSKeyword:
		c, err := FromName(str)
		if err != nil {
			return Invalid, Color{}, err
		}
		return code, c, nil
	}
	return Invalid, Color{}, fmt.Errorf("colorcode.Parse: no color code family matches %q", str)
}

// MustParse parses the given color code string, panicking on any
// error; see [Parse] for a version that returns an error.
func MustParse(str string) (ColorCodes, Color) {
	return grr.Must2(Parse(str))
}

// LogParse parses the given color code string, logging any error;
// see [Parse] for a version that returns an error.
func LogParse(str string) (ColorCodes, Color) {
	return grr.Log2(Parse(str))
}

// classify matches the string against every family grammar and returns
// the single matching family and its captured numeric fields. It
// returns [Invalid] if no grammar, or more than one, matches.
func classify(str string) (ColorCodes, []string) {
	code := Invalid
	var fields []string
	n := 0
	for _, g := range grammars {
		if m := g.re.FindStringSubmatch(str); m != nil {
			code = g.code
			fields = m[1:]
			n++
		}
	}
	if n != 1 {
		return Invalid, nil
	}
	return code, fields
}

// intField converts a captured integer field, returning 0 for anything
// that survives the grammar but fails to parse.
func intField(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// floatField converts a captured decimal field, returning def for
// anything that survives the grammar but fails to parse
// (e.g., repeated decimal points).
func floatField(s string, def float32) float32 {
	v, err := laser.ToFloat32(s)
	if err != nil {
		return def
	}
	return v
}
