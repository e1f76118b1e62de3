package objects

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/vitrine-dev/vitrine/pkg/cache"
)

// Circle is a cheap renderable with several rich representations.
// Each intrinsic method computes on demand; nothing is memoized because
// none of the outputs are expensive.
type Circle struct {
	Radius float64 `json:"radius"`
}

// NewCircle creates a circle. Non-positive radii are clamped to 1.
func NewCircle(radius float64) Circle {
	if radius <= 0 {
		radius = 1
	}
	return Circle{Radius: radius}
}

// Area returns the circle's area.
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// RenderHTML returns a styled inline representation.
func (c Circle) RenderHTML() ([]byte, error) {
	return fmt.Appendf(nil, `<span style="color:steelblue">&#x25CB; Circle(r=%g)</span>`, c.Radius), nil
}

// RenderMarkdown returns an emphasized markdown representation.
func (c Circle) RenderMarkdown() ([]byte, error) {
	return fmt.Appendf(nil, "**Circle** with radius %g", c.Radius), nil
}

// RenderLaTeX returns the area formula with this circle's radius.
func (c Circle) RenderLaTeX() ([]byte, error) {
	return fmt.Appendf(nil, `$A = \pi \cdot %g^2 = %.4f$`, c.Radius, c.Area()), nil
}

// RenderJSON returns the circle with its derived area.
func (c Circle) RenderJSON() ([]byte, error) {
	return json.Marshal(struct {
		Radius float64 `json:"radius"`
		Area   float64 `json:"area"`
	}{Radius: c.Radius, Area: c.Area()})
}

// String implements fmt.Stringer for the textual fallback.
func (c Circle) String() string {
	return fmt.Sprintf("Circle(r=%g)", c.Radius)
}

// Fingerprint identifies the object's content for engine-level caching.
func (c Circle) Fingerprint() string {
	return cache.Hash(fmt.Appendf(nil, "circle:%g", c.Radius))
}
