package effects

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidSized(w, h int, c color.NRGBA) *Costume {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return NewCostume(img)
}

func solidCostume(c color.NRGBA) *Costume {
	return solidSized(4, 4, c)
}

func TestSetClamps(t *testing.T) {
	var e Effects

	e.Set("brightness", 250)
	assert.Equal(t, 100.0, e.Brightness)

	e.Set("brightness", -250)
	assert.Equal(t, -100.0, e.Brightness)

	e.Set("ghost", 120)
	assert.Equal(t, 100.0, e.Ghost)

	e.Set("ghost", -5)
	assert.Equal(t, 0.0, e.Ghost)

	// Color is unclamped; it wraps at render time instead.
	e.Set("color", 450)
	assert.Equal(t, 450.0, e.Color)

	// Unknown names change nothing.
	e.Set("mosaic", 50)
	assert.Equal(t, Effects{Color: 450, Brightness: -100, Ghost: 0}, e)
}

func TestChangeAccumulates(t *testing.T) {
	var e Effects
	e.Change("color", 25)
	e.Change("color", 25)
	assert.Equal(t, 50.0, e.Color)

	e.Change("ghost", 80)
	e.Change("ghost", 80)
	assert.Equal(t, 100.0, e.Ghost)

	e.Clear()
	assert.Equal(t, Effects{}, e)
}

func TestGhostScalesAlpha(t *testing.T) {
	c := solidCostume(color.NRGBA{R: 10, G: 20, B: 30, A: 200})

	out := Effects{Ghost: 50}.Apply(c.Image())
	got := out.NRGBAAt(0, 0)
	assert.Equal(t, uint8(10), got.R)
	assert.Equal(t, uint8(20), got.G)
	assert.Equal(t, uint8(30), got.B)
	assert.Equal(t, uint8(100), got.A)

	out = Effects{Ghost: 100}.Apply(c.Image())
	assert.Equal(t, uint8(0), out.NRGBAAt(2, 2).A)
}

func TestBrightness(t *testing.T) {
	c := solidCostume(color.NRGBA{R: 100, G: 150, B: 250, A: 255})

	out := Effects{Brightness: 20}.Apply(c.Image())
	got := out.NRGBAAt(1, 1)
	assert.Equal(t, uint8(151), got.R)
	assert.Equal(t, uint8(201), got.G)
	// Channels saturate rather than wrapping.
	assert.Equal(t, uint8(255), got.B)

	out = Effects{Brightness: -100}.Apply(c.Image())
	got = out.NRGBAAt(1, 1)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 0, A: 255}, got)
}

func TestColorShiftsHue(t *testing.T) {
	red := solidCostume(color.NRGBA{R: 255, A: 255})

	// A quarter cycle shifts red by 90 degrees, between yellow and green.
	out := Effects{Color: 50}.Apply(red.Image())
	got := out.NRGBAAt(0, 0)
	assert.Equal(t, uint8(0), got.B)
	assert.True(t, got.G > 200, "expected strong green channel, got %v", got)

	// Half a cycle turns red into cyan.
	out = Effects{Color: 100}.Apply(red.Image())
	got = out.NRGBAAt(0, 0)
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 255, A: 255}, got)

	// A full cycle is the identity within rounding.
	out = Effects{Color: FullColorCycle}.Apply(red.Image())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(0, 0))

	// Negative values wrap the other way: -100 also lands on cyan.
	out = Effects{Color: -100}.Apply(red.Image())
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 255, A: 255}, out.NRGBAAt(0, 0))
}

func TestColorPreservesGray(t *testing.T) {
	gray := solidCostume(color.NRGBA{R: 77, G: 77, B: 77, A: 255})
	out := Effects{Color: 120}.Apply(gray.Image())
	assert.Equal(t, color.NRGBA{R: 77, G: 77, B: 77, A: 255}, out.NRGBAAt(3, 3))
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	c := solidCostume(color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	before := c.Image().NRGBAAt(0, 0)
	Effects{Color: 75, Brightness: 30, Ghost: 40}.Apply(c.Image())
	assert.Equal(t, before, c.Image().NRGBAAt(0, 0))
}

func TestRenderCaches(t *testing.T) {
	c := solidCostume(color.NRGBA{R: 40, G: 80, B: 120, A: 255})
	e := Effects{Color: 33}

	first := c.Render(e)
	second := c.Render(e)
	assert.Same(t, first, second)

	// The zero effect state renders the costume itself.
	assert.Same(t, c.Image(), c.Render(Effects{}))

	// A different state renders a different bitmap.
	other := c.Render(Effects{Color: 150})
	assert.NotSame(t, first, other)
}

func TestCostumeFingerprint(t *testing.T) {
	a := solidCostume(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	b := solidCostume(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	c := solidCostume(color.NRGBA{R: 3, G: 2, B: 1, A: 255})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

// Two costumes with identical pixel bytes but different shapes must not
// share a fingerprint, or the render cache would serve bitmaps of the
// wrong dimensions.
func TestFingerprintIncludesShape(t *testing.T) {
	fill := color.NRGBA{R: 40, G: 80, B: 160, A: 255}
	square := solidSized(4, 4, fill)
	wide := solidSized(8, 2, fill)

	assert.NotEqual(t, square.Fingerprint(), wide.Fingerprint())

	e := Effects{Color: 60}
	got := square.Render(e)
	require.Equal(t, 4, got.Bounds().Dx())
	require.Equal(t, 4, got.Bounds().Dy())

	got = wide.Render(e)
	require.Equal(t, 8, got.Bounds().Dx())
	require.Equal(t, 2, got.Bounds().Dy())
}

func TestScaled(t *testing.T) {
	c := solidCostume(color.NRGBA{R: 120, G: 130, B: 140, A: 255})
	scaled := c.Scaled(8, 2)

	b := scaled.Image().Bounds()
	require.Equal(t, 8, b.Dx())
	require.Equal(t, 2, b.Dy())
	assert.Equal(t, color.NRGBA{R: 120, G: 130, B: 140, A: 255}, scaled.Image().NRGBAAt(4, 1))
	assert.NotEqual(t, c.Fingerprint(), scaled.Fingerprint())
}
