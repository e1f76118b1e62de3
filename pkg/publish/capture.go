package publish

import (
	"context"
	"sync"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// Capture collects published representations in memory.
// Used by tests and by the server to persist a bundle after display.
type Capture struct {
	mu   sync.Mutex
	reps []mime.Representation
}

// NewCapture creates an empty capture sink.
func NewCapture() *Capture {
	return &Capture{}
}

// Publish records the representation.
func (c *Capture) Publish(ctx context.Context, rep mime.Representation) error {
	c.mu.Lock()
	c.reps = append(c.reps, rep)
	c.mu.Unlock()
	emit(ctx, rep, nil)
	return nil
}

// Representations returns everything published so far, in publish order.
func (c *Capture) Representations() []mime.Representation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]mime.Representation, len(c.reps))
	copy(out, c.reps)
	return out
}

// Bundle collapses the captured representations into a bundle.
// Later publishes of the same kind overwrite earlier ones.
func (c *Capture) Bundle() mime.Bundle {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := make(mime.Bundle, len(c.reps))
	for _, rep := range c.reps {
		b[rep.Kind] = rep.Data
	}
	return b
}

// Ensure Capture implements Publisher.
var _ Publisher = (*Capture)(nil)
