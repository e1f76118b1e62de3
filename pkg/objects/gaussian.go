package objects

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"
	"sync/atomic"

	"github.com/vitrine-dev/vitrine/pkg/cache"
)

// Gaussian renders a two-dimensional gaussian intensity image.
//
// Producing the PNG is the expensive part, so it is computed at most once
// per object lifetime: the first RenderPNG call rasterizes and encodes the
// image, later calls return the identical bytes. The dispatcher never caches
// on its own; this memoization is the producing object's responsibility.
type Gaussian struct {
	Sigma float64 // standard deviation in pixels
	Size  int     // image width and height in pixels

	once     sync.Once
	png      []byte
	pngErr   error
	computes atomic.Int64
}

// DefaultGaussianSize is the image edge length used when Size is zero.
const DefaultGaussianSize = 256

// NewGaussian creates a gaussian image producer.
// Sigma values at or below zero fall back to a quarter of the image size.
func NewGaussian(sigma float64, size int) *Gaussian {
	if size <= 0 {
		size = DefaultGaussianSize
	}
	if sigma <= 0 {
		sigma = float64(size) / 4
	}
	return &Gaussian{Sigma: sigma, Size: size}
}

// RenderPNG returns the encoded gaussian image.
// The expensive rasterization runs once; repeated calls return the same
// slice contents.
func (g *Gaussian) RenderPNG() ([]byte, error) {
	g.once.Do(func() {
		g.computes.Add(1)
		g.png, g.pngErr = g.rasterize()
	})
	return g.png, g.pngErr
}

// rasterize draws and encodes the image.
func (g *Gaussian) rasterize() ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, g.Size, g.Size))
	center := float64(g.Size) / 2
	denom := 2 * g.Sigma * g.Sigma

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			v := math.Exp(-(dx*dx + dy*dy) / denom)
			img.SetGray(x, y, color.Gray{Y: uint8(v * 255)})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderLaTeX returns the gaussian density formula with this object's sigma.
func (g *Gaussian) RenderLaTeX() ([]byte, error) {
	return fmt.Appendf(nil, `$f(x,y) = e^{-(x^2+y^2)/(2\cdot%.3g^2)}$`, g.Sigma), nil
}

// String implements fmt.Stringer for the textual fallback.
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian(sigma=%g, size=%d)", g.Sigma, g.Size)
}

// ComputeCount reports how many times the expensive rasterization ran.
func (g *Gaussian) ComputeCount() int64 {
	return g.computes.Load()
}

// Fingerprint identifies the object's content for engine-level caching.
// Two Gaussians with the same parameters render identical payloads.
func (g *Gaussian) Fingerprint() string {
	return cache.Hash(fmt.Appendf(nil, "gaussian:%g:%d", g.Sigma, g.Size))
}
