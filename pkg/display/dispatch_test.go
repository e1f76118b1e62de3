package display

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// plainValue has no intrinsic methods and no String method.
type plainValue struct {
	N int
}

// stringerValue has no intrinsics but implements fmt.Stringer.
type stringerValue struct{}

func (stringerValue) String() string { return "stringer output" }

// richValue exposes HTML and LaTeX intrinsics.
type richValue struct {
	label string
}

func (v richValue) RenderHTML() ([]byte, error) {
	return fmt.Appendf(nil, "<b>%s</b>", v.label), nil
}

func (v richValue) RenderLaTeX() ([]byte, error) {
	return fmt.Appendf(nil, `$\mathrm{%s}$`, v.label), nil
}

// failingValue returns an error from its intrinsic method.
type failingValue struct{ err error }

func (v failingValue) RenderJSON() ([]byte, error) { return nil, v.err }

// selfDisplaying takes full control of its own display.
type selfDisplaying struct {
	htmlCalls int
}

func (s *selfDisplaying) Display(ctx context.Context, pub publish.Publisher) error {
	return pub.Publish(ctx, mime.Representation{Kind: mime.KindText, Data: []byte("self")})
}

// RenderHTML exists to prove the hook suppresses per-kind dispatch.
func (s *selfDisplaying) RenderHTML() ([]byte, error) {
	s.htmlCalls++
	return []byte("<i>should never run</i>"), nil
}

func TestRenderAbsent(t *testing.T) {
	reg := NewRegistry()

	_, ok, err := reg.Render(context.Background(), plainValue{N: 1}, mime.KindPNG)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if ok {
		t.Error("object without renderer or intrinsic should be absent")
	}
}

func TestRenderIntrinsicUnchanged(t *testing.T) {
	reg := NewRegistry()

	rep, ok, err := reg.Render(context.Background(), richValue{label: "x"}, mime.KindHTML)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !ok {
		t.Fatal("intrinsic HTML should be available")
	}
	if string(rep.Data) != "<b>x</b>" {
		t.Errorf("payload = %q, want intrinsic output unchanged", rep.Data)
	}
	if rep.Kind != mime.KindHTML {
		t.Errorf("kind = %v, want %v", rep.Kind, mime.KindHTML)
	}
}

func TestRegistryPrecedesIntrinsic(t *testing.T) {
	reg := NewRegistry()
	Register(reg, mime.KindHTML, func(v richValue) ([]byte, error) {
		return []byte("<u>registered</u>"), nil
	})

	rep, ok, err := reg.Render(context.Background(), richValue{label: "x"}, mime.KindHTML)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !ok {
		t.Fatal("representation should be available")
	}
	if string(rep.Data) != "<u>registered</u>" {
		t.Errorf("payload = %q, registry must take precedence over intrinsic", rep.Data)
	}
}

func TestLastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	Register(reg, mime.KindJSON, func(v plainValue) ([]byte, error) {
		return []byte(`"first"`), nil
	})
	Register(reg, mime.KindJSON, func(v plainValue) ([]byte, error) {
		return []byte(`"second"`), nil
	})

	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1 (re-registration replaces)", reg.Len())
	}

	rep, _, err := reg.Render(context.Background(), plainValue{}, mime.KindJSON)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if string(rep.Data) != `"second"` {
		t.Errorf("payload = %q, want last registration to win", rep.Data)
	}
}

func TestRenderFallbackText(t *testing.T) {
	reg := NewRegistry()

	// Stringer is preferred
	rep, ok, err := reg.Render(context.Background(), stringerValue{}, mime.KindText)
	if err != nil || !ok {
		t.Fatalf("Render = %v/%v", ok, err)
	}
	if string(rep.Data) != "stringer output" {
		t.Errorf("payload = %q, want Stringer output", rep.Data)
	}

	// %v for everything else
	rep, ok, err = reg.Render(context.Background(), plainValue{N: 7}, mime.KindText)
	if err != nil || !ok {
		t.Fatalf("Render = %v/%v", ok, err)
	}
	if string(rep.Data) != "{7}" {
		t.Errorf("payload = %q, want %%v fallback", rep.Data)
	}
}

func TestRenderErrorPropagated(t *testing.T) {
	reg := NewRegistry()
	sentinel := errors.New("render exploded")

	_, _, err := reg.Render(context.Background(), failingValue{err: sentinel}, mime.KindJSON)
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want sentinel surfaced untouched", err)
	}

	// Registered renderer errors propagate too
	Register(reg, mime.KindHTML, func(v plainValue) ([]byte, error) {
		return nil, sentinel
	})
	_, _, err = reg.Render(context.Background(), plainValue{}, mime.KindHTML)
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want sentinel surfaced untouched", err)
	}
}

func TestRenderAll(t *testing.T) {
	reg := NewRegistry()
	Register(reg, mime.KindJSON, func(v richValue) ([]byte, error) {
		return []byte(`{"label":"x"}`), nil
	})

	bundle, err := reg.RenderAll(context.Background(), richValue{label: "x"})
	if err != nil {
		t.Fatalf("RenderAll error: %v", err)
	}

	// text fallback, HTML + LaTeX intrinsics, JSON from registry
	wantKinds := []mime.Kind{mime.KindText, mime.KindHTML, mime.KindLaTeX, mime.KindJSON}
	if len(bundle) != len(wantKinds) {
		t.Errorf("bundle kinds = %v, want %v", bundle.Kinds(), wantKinds)
	}
	for _, k := range wantKinds {
		if _, ok := bundle[k]; !ok {
			t.Errorf("bundle missing %s", k)
		}
	}
	if string(bundle[mime.KindJSON]) != `{"label":"x"}` {
		t.Errorf("JSON payload = %q", bundle[mime.KindJSON])
	}
}

func TestRenderAllErrorAborts(t *testing.T) {
	reg := NewRegistry()
	sentinel := errors.New("boom")

	bundle, err := reg.RenderAll(context.Background(), failingValue{err: sentinel})
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want wrapped sentinel", err)
	}
	if bundle != nil {
		t.Error("failed RenderAll should produce no bundle")
	}
}

func TestDisplayerBypassesDispatch(t *testing.T) {
	reg := NewRegistry()
	obj := &selfDisplaying{}
	sink := publish.NewCapture()

	// Display invokes only the hook
	if err := reg.Display(context.Background(), obj, sink); err != nil {
		t.Fatalf("Display error: %v", err)
	}
	reps := sink.Representations()
	if len(reps) != 1 || string(reps[0].Data) != "self" {
		t.Errorf("published = %v, want only the hook's output", reps)
	}
	if obj.htmlCalls != 0 {
		t.Errorf("per-kind method ran %d times, want 0", obj.htmlCalls)
	}

	// RenderAll refuses per-kind dispatch for self-displaying objects
	_, err := reg.RenderAll(context.Background(), obj)
	if !errors.Is(err, ErrSelfDisplaying) {
		t.Errorf("RenderAll error = %v, want ErrSelfDisplaying", err)
	}
	if obj.htmlCalls != 0 {
		t.Errorf("RenderAll invoked per-kind method %d times, want 0", obj.htmlCalls)
	}
}

func TestDisplayPublishesBundle(t *testing.T) {
	reg := NewRegistry()
	sink := publish.NewCapture()

	if err := reg.Display(context.Background(), richValue{label: "y"}, sink); err != nil {
		t.Fatalf("Display error: %v", err)
	}

	reps := sink.Representations()
	if len(reps) != 3 { // text fallback, HTML, LaTeX
		t.Fatalf("published %d representations, want 3", len(reps))
	}
	// Published in mime.Known order: text first
	if reps[0].Kind != mime.KindText {
		t.Errorf("first published kind = %v, want text/plain", reps[0].Kind)
	}
}

func TestPointerAndValueTypesAreDistinct(t *testing.T) {
	reg := NewRegistry()
	Register(reg, mime.KindHTML, func(v *plainValue) ([]byte, error) {
		return []byte("pointer"), nil
	})

	// Value type has no registration
	_, ok, err := reg.Render(context.Background(), plainValue{}, mime.KindHTML)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if ok {
		t.Error("value type should not match pointer registration")
	}

	rep, ok, err := reg.Render(context.Background(), &plainValue{}, mime.KindHTML)
	if err != nil || !ok {
		t.Fatalf("Render = %v/%v", ok, err)
	}
	if string(rep.Data) != "pointer" {
		t.Errorf("payload = %q", rep.Data)
	}
}
