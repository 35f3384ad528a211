package effects

import (
	"encoding/binary"
	"image"
	"image/draw"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dboslee/lru"
	xdraw "golang.org/x/image/draw"
)

// Costume is a sprite bitmap. The pixel data is fingerprinted on
// creation so filtered renders can be cached across costume reloads.
type Costume struct {
	img *image.NRGBA
	id  uint64
}

// NewCostume copies src into a zero-origin NRGBA bitmap.
func NewCostume(src image.Image) *Costume {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Costume{img: img, id: fingerprint(img)}
}

// fingerprint hashes the bitmap's dimensions along with its pixels, so
// differently shaped costumes with identical pixel bytes stay distinct.
func fingerprint(img *image.NRGBA) uint64 {
	var shape [8]byte
	binary.LittleEndian.PutUint32(shape[:4], uint32(img.Rect.Dx()))
	binary.LittleEndian.PutUint32(shape[4:], uint32(img.Rect.Dy()))

	d := xxhash.New()
	d.Write(shape[:])
	d.Write(img.Pix)
	return d.Sum64()
}

// Image returns the unfiltered bitmap. Callers must treat it as
// read-only.
func (c *Costume) Image() *image.NRGBA {
	return c.img
}

// Fingerprint is the xxhash of the costume's pixel data. Reloading the
// same file contents produces the same fingerprint.
func (c *Costume) Fingerprint() uint64 {
	return c.id
}

// Scaled returns a new costume resampled to w by h pixels.
func (c *Costume) Scaled(w, h int) *Costume {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), xdraw.Src, nil)
	return &Costume{img: dst, id: fingerprint(dst)}
}

// filterKey identifies one rendered (costume, effect state) pair.
// Effect values are quantized to quarter steps; states that close are
// visually indistinguishable and share a cache slot.
type filterKey struct {
	costume    uint64
	color      int32
	brightness int32
	ghost      int32
}

func quantize(v float64) int32 {
	return int32(math.Round(v * 4))
}

var filteredCache = lru.New[filterKey, *image.NRGBA]()

// Render applies e to the costume, reusing a cached bitmap when the
// same effect state was rendered before. The returned image is shared
// and must be treated as read-only.
func (c *Costume) Render(e Effects) *image.NRGBA {
	if e == (Effects{}) {
		return c.img
	}

	key := filterKey{
		costume:    c.id,
		color:      quantize(math.Mod(e.Color, FullColorCycle)),
		brightness: quantize(e.Brightness),
		ghost:      quantize(e.Ghost),
	}
	if img, ok := filteredCache.Get(key); ok {
		return img
	}

	img := e.Apply(c.img)
	filteredCache.Set(key, img)
	return img
}
