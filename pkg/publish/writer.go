package publish

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// WriterPublisher writes representations to an io.Writer.
// Text payloads are written verbatim; binary payloads are base64-encoded so
// the sink stays safe for terminals and logs. Each representation is
// prefixed with its kind.
type WriterPublisher struct {
	w io.Writer
}

// NewWriter creates a publisher writing to w.
func NewWriter(w io.Writer) *WriterPublisher {
	return &WriterPublisher{w: w}
}

// Publish writes one representation to the underlying writer.
func (p *WriterPublisher) Publish(ctx context.Context, rep mime.Representation) error {
	payload := rep.Data
	if rep.Kind.IsBinary() {
		payload = []byte(base64.StdEncoding.EncodeToString(rep.Data))
	}
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", rep.Kind, payload)
	emit(ctx, rep, err)
	return err
}

// Ensure WriterPublisher implements Publisher.
var _ Publisher = (*WriterPublisher)(nil)
