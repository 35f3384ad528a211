// Package effects implements the graphic effects the runtime applies to
// sprite costumes: color, brightness and ghost. The color effect is the
// consumer of the colors package; it shifts every pixel's hue by
// converting the pixel to HSV and back.
package effects

import (
	"image"
	"math"

	"go.uber.org/zap"

	"github.com/academian/forkphorus/colors"
	"github.com/academian/forkphorus/internal/logging"
	"github.com/academian/forkphorus/internal/util"
)

var logger = logging.New("effects")

// FullColorCycle is the color-effect value that walks the hue all the
// way around the wheel and back to the original color.
const FullColorCycle = 200

// Effects holds the graphic-effect state of one sprite. The zero value
// applies no effect.
type Effects struct {
	// Color shifts hue. FullColorCycle is one full trip around the
	// wheel; values wrap, so 250 looks like 50.
	Color float64
	// Brightness offsets every channel, from -100 (black) to 100 (white).
	Brightness float64
	// Ghost fades the sprite out, from 0 (opaque) to 100 (invisible).
	Ghost float64
}

// Set assigns a named effect, clamping to the effect's legal range.
// Unknown effect names are ignored with a warning, matching how project
// files with unsupported effects are tolerated.
func (e *Effects) Set(name string, value float64) {
	switch name {
	case "color":
		e.Color = value
	case "brightness":
		e.Brightness = util.Clamp(value, -100, 100)
	case "ghost":
		e.Ghost = util.Clamp(value, 0, 100)
	default:
		logger.With(zap.String("effect", name)).Warn("Unknown graphic effect")
	}
}

// Change adjusts a named effect by delta, with the same clamping and
// unknown-name handling as Set.
func (e *Effects) Change(name string, delta float64) {
	switch name {
	case "color":
		e.Set(name, e.Color+delta)
	case "brightness":
		e.Set(name, e.Brightness+delta)
	case "ghost":
		e.Set(name, e.Ghost+delta)
	default:
		logger.With(zap.String("effect", name)).Warn("Unknown graphic effect")
	}
}

// Clear resets every effect to its neutral value.
func (e *Effects) Clear() {
	*e = Effects{}
}

// Apply returns a copy of src with the effects baked in. src itself is
// never modified.
func (e Effects) Apply(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)

	// Hue shift as a fraction of a full turn, wrapped into [0, 1).
	shift := math.Mod(e.Color, FullColorCycle) / FullColorCycle
	if shift < 0 {
		shift++
	}
	bright := util.Clamp(e.Brightness, -100, 100) * 255 / 100
	alpha := util.Clamp(1-e.Ghost/100, 0, 1)

	for i := 0; i < len(dst.Pix); i += 4 {
		r := float64(dst.Pix[i])
		g := float64(dst.Pix[i+1])
		b := float64(dst.Pix[i+2])

		if shift != 0 {
			h, s, v := colors.RGBToHSV(r, g, b)
			// HSVToRGB takes its hue as a fraction of a turn, not
			// degrees, so the converted hue is divided down first.
			r, g, b = colors.HSVToRGB(h/360+shift, s, v)
		}
		if bright != 0 {
			r = util.Clamp(r+bright, 0, 255)
			g = util.Clamp(g+bright, 0, 255)
			b = util.Clamp(b+bright, 0, 255)
		}

		dst.Pix[i] = uint8(r + 0.5)
		dst.Pix[i+1] = uint8(g + 0.5)
		dst.Pix[i+2] = uint8(b + 0.5)
		if alpha < 1 {
			dst.Pix[i+3] = uint8(float64(dst.Pix[i+3])*alpha + 0.5)
		}
	}

	return dst
}
