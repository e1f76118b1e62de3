package publish

import (
	"context"
	"errors"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// Multi fans a representation out to several publishers.
// Every sink is attempted; errors are joined.
type Multi struct {
	sinks []Publisher
}

// NewMulti creates a publisher that forwards to all given sinks.
func NewMulti(sinks ...Publisher) *Multi {
	return &Multi{sinks: sinks}
}

// Publish forwards the representation to every sink.
func (m *Multi) Publish(ctx context.Context, rep mime.Representation) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Publish(ctx, rep); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ensure Multi implements Publisher.
var _ Publisher = (*Multi)(nil)
