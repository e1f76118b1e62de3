package mime

import "testing"

func TestIsKnown(t *testing.T) {
	for _, k := range Known {
		if !k.IsKnown() {
			t.Errorf("%s should be known", k)
		}
	}
	if Kind("video/mp4").IsKnown() {
		t.Error("video/mp4 should not be known")
	}
}

func TestIsBinary(t *testing.T) {
	if !KindPNG.IsBinary() || !KindPDF.IsBinary() {
		t.Error("PNG and PDF payloads are binary")
	}
	if KindHTML.IsBinary() || KindSVG.IsBinary() {
		t.Error("HTML and SVG payloads are text")
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindText, "txt"},
		{KindHTML, "html"},
		{KindSVG, "svg"},
		{KindJSON, "json"},
		{Kind("video/mp4"), "bin"},
	}
	for _, tt := range tests {
		if got := tt.kind.Ext(); got != tt.want {
			t.Errorf("%s.Ext() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestBundleOrdering(t *testing.T) {
	b := Bundle{
		KindJSON: []byte("{}"),
		KindText: []byte("x"),
		KindPNG:  []byte{1},
	}

	kinds := b.Kinds()
	want := []Kind{KindText, KindPNG, KindJSON}
	if len(kinds) != len(want) {
		t.Fatalf("Kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}

	reps := b.Representations()
	if len(reps) != 3 || reps[0].Kind != KindText {
		t.Errorf("Representations = %v", reps)
	}
}
