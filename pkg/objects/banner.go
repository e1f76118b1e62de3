package objects

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// Banner owns its entire display process. It implements the full-control
// hook, so the dispatcher never performs per-kind lookup on it: Display is
// invoked and publishes whatever the banner decides, here a framed text
// version and an HTML version.
type Banner struct {
	Text string
}

// NewBanner creates a banner for the given text.
func NewBanner(text string) *Banner {
	return &Banner{Text: text}
}

// Display publishes the banner's representations directly to the sink.
func (b *Banner) Display(ctx context.Context, pub publish.Publisher) error {
	frame := strings.Repeat("*", len(b.Text)+4)
	text := fmt.Sprintf("%s\n* %s *\n%s", frame, b.Text, frame)

	if err := pub.Publish(ctx, mime.Representation{Kind: mime.KindText, Data: []byte(text)}); err != nil {
		return err
	}
	html := fmt.Sprintf(`<div style="border:2px solid black;padding:4px">%s</div>`, b.Text)
	return pub.Publish(ctx, mime.Representation{Kind: mime.KindHTML, Data: []byte(html)})
}
