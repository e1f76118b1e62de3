package publish

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/vitrine-dev/vitrine/pkg/errors"
	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// DirPublisher writes each representation to its own artifact file.
// Files are named <base>.<ext> under the target directory, where the
// extension follows the kind (circle.html, circle.png, ...).
type DirPublisher struct {
	dir     string
	base    string
	written []string
}

// NewDir creates a publisher writing artifact files named after base into
// dir. The directory is created on first publish.
func NewDir(dir, base string) *DirPublisher {
	if base == "" {
		base = "out"
	}
	return &DirPublisher{dir: dir, base: base}
}

// Publish writes one representation to <dir>/<base>.<ext>.
func (p *DirPublisher) Publish(ctx context.Context, rep mime.Representation) error {
	err := p.write(rep)
	emit(ctx, rep, err)
	return err
}

func (p *DirPublisher) write(rep mime.Representation) error {
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodePublishFailed, err, "create %s", p.dir)
	}
	path := p.Path(rep.Kind)
	if err := os.WriteFile(path, rep.Data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodePublishFailed, err, "write %s", path)
	}
	p.written = append(p.written, path)
	return nil
}

// Written returns the paths of all artifact files written so far, in
// publish order.
func (p *DirPublisher) Written() []string {
	return p.written
}

// Path returns the artifact path a representation of the given kind would
// be written to.
func (p *DirPublisher) Path(kind mime.Kind) string {
	name := strings.TrimSuffix(p.base, filepath.Ext(p.base))
	return filepath.Join(p.dir, name+"."+kind.Ext())
}

// Ensure DirPublisher implements Publisher.
var _ Publisher = (*DirPublisher)(nil)
