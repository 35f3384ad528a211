package player

import (
	"image"

	"github.com/academian/forkphorus/effects"
)

// Sprite is one animated object: a costume, its graphic-effect state
// and its placement on the stage.
type Sprite struct {
	Costume       *effects.Costume
	Effects       effects.Effects
	X, Y          float64
	Direction     float64 // degrees, 90 points right
	RotationStyle RotationStyle
}

// Render produces the sprite's current bitmap: the costume with effects
// applied, mirrored when a left-right sprite faces left. Full rotation
// for RotationNormal belongs to the renderer and is not performed here.
func (s *Sprite) Render() *image.NRGBA {
	img := s.Costume.Render(s.Effects)
	if s.RotationStyle == RotationLeftRight && s.Direction < 0 {
		img = mirror(img)
	}
	return img
}

// mirror flips a zero-origin bitmap horizontally.
func mirror(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetNRGBA(b.Dx()-1-x, y, src.NRGBAAt(x, y))
		}
	}
	return dst
}
