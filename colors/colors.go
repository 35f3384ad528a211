// Package colors implements the color-space conversions behind the
// runtime's color-altering graphic effects: RGB, HSL and HSV.
//
// Hue is measured in degrees [0, 360) everywhere except HSVToRGB, which
// takes hue as a fraction of a full turn in [0, 1]. Callers feeding it a
// hue from RGBToHSV or HSLToHSV must divide by 360 first.
//
// None of the functions validate their inputs. Out-of-range channels
// silently produce out-of-range results; the effect pipeline is expected
// to hand over well-formed values.
package colors

import "math"

// RGBToHSL converts red, green and blue channels in [0, 255] to hue in
// degrees [0, 360) plus saturation and lightness in [0, 1].
//
// Achromatic input (r == g == b) yields hue 0 and saturation 0; the
// saturation formula would otherwise divide by zero.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	red := r / 255
	green := g / 255
	blue := b / 255

	max := math.Max(red, math.Max(green, blue))
	min := math.Min(red, math.Min(green, blue))

	if min == max {
		return 0, 0, red
	}

	c := max - min
	l = (min + max) / 2
	// The ratio can round an ulp past 1 for near-saturated inputs.
	s = math.Min(c/(1-math.Abs(2*l-1)), 1)

	// When two channels tie for max, the first branch wins.
	switch {
	case red == max:
		h = math.Mod((green-blue)/c+6, 6)
	case green == max:
		h = (blue-red)/c + 2
	default:
		h = (red-green)/c + 4
	}

	return h * 60, s, l
}

// RGBToHSV converts red, green and blue channels in [0, 255] to hue in
// degrees [0, 360) plus saturation and value in [0, 1].
//
// Achromatic input yields hue 0, and pure black additionally yields
// saturation 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	red := r / 255
	green := g / 255
	blue := b / 255

	max := math.Max(red, math.Max(green, blue))
	min := math.Min(red, math.Min(green, blue))
	d := max - min

	v = max
	if max > 0 {
		s = d / max
	}
	if min == max {
		return 0, s, v
	}

	// Same tie-break as RGBToHSL: first matching channel wins.
	switch {
	case red == max:
		h = (green - blue) / d
		if green < blue {
			// Wrap into [0, 6) instead of going negative.
			h += 6
		}
	case green == max:
		h = (blue-red)/d + 2
	default:
		h = (red-green)/d + 4
	}

	return h / 6 * 360, s, v
}

// HSVToRGB converts a color to red, green and blue channels in [0, 255].
//
// Hue is a fraction of a full turn in [0, 1] here, not degrees. This is
// the one asymmetry in the package; divide a degree hue by 360 before
// calling. Saturation and value are in [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	sector := math.Floor(h * 6)
	f := h*6 - sector
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return r * 255, g * 255, b * 255
}

// HSLToHSV converts saturation and lightness in [0, 1] to saturation and
// value in [0, 1]. Hue passes through unchanged, still in degrees.
//
// A fully dark color (v == 0) reports saturation 0 rather than dividing
// by zero.
func HSLToHSV(h, s, l float64) (float64, float64, float64) {
	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 - 2*l/v
	}
	return h, sv, v
}

// HSVToHSL converts saturation and value in [0, 1] to saturation and
// lightness in [0, 1]. Hue passes through unchanged, still in degrees.
//
// Black (l == 0) and white (l == 1) report saturation 0; either extreme
// would make the saturation formula 0/0.
func HSVToHSL(h, s, v float64) (float64, float64, float64) {
	l := v - v*s/2
	sl := 0.0
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return h, sl, l
}
