package objects

import (
	"github.com/vitrine-dev/vitrine/pkg/errors"
)

// Params carries constructor arguments for the built-in objects. Zero
// values fall back to each object's defaults.
type Params struct {
	// Circle
	Radius float64 `json:"radius,omitempty"`

	// Gaussian
	Sigma float64 `json:"sigma,omitempty"`
	Size  int     `json:"size,omitempty"`

	// Banner
	Text string `json:"text,omitempty"`

	// Graph
	Name  string      `json:"name,omitempty"`
	Nodes []string    `json:"nodes,omitempty"`
	Edges []GraphEdge `json:"edges,omitempty"`
}

// Names lists the built-in object names accepted by Build.
func Names() []string {
	return []string{"banner", "circle", "gaussian", "graph"}
}

// Build constructs a built-in object by name.
func Build(name string, p Params) (any, error) {
	switch name {
	case "circle":
		radius := p.Radius
		if radius == 0 {
			radius = 1
		}
		return NewCircle(radius), nil
	case "gaussian":
		sigma := p.Sigma
		if sigma == 0 {
			sigma = 1
		}
		return NewGaussian(sigma, p.Size), nil
	case "graph":
		if len(p.Nodes) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "graph needs at least one node")
		}
		graphName := p.Name
		if graphName == "" {
			graphName = "G"
		}
		return NewGraph(graphName, p.Nodes, p.Edges), nil
	case "banner":
		text := p.Text
		if text == "" {
			text = "vitrine"
		}
		return NewBanner(text), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidObject, "unknown object: %s", name)
	}
}
