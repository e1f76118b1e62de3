package store

import (
	"context"
	"testing"
	"time"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

func TestNewRecord(t *testing.T) {
	bundle := mime.Bundle{
		mime.KindText: []byte("plain"),
		mime.KindHTML: []byte("<b>rich</b>"),
	}
	rec := NewRecord("objects.Circle", bundle)

	if rec.ID == "" {
		t.Error("record should get a fresh ID")
	}
	if rec.TypeName != "objects.Circle" {
		t.Errorf("TypeName = %q", rec.TypeName)
	}
	if len(rec.Representations) != 2 {
		t.Fatalf("Representations = %d, want 2", len(rec.Representations))
	}
	// mime.Known order: text before HTML
	if rec.Representations[0].Kind != mime.KindText {
		t.Errorf("first representation = %v, want text/plain", rec.Representations[0].Kind)
	}

	// Round-trip through Bundle
	back := rec.Bundle()
	if string(back[mime.KindHTML]) != "<b>rich</b>" {
		t.Errorf("Bundle round-trip = %q", back[mime.KindHTML])
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := NewRecord("objects.Circle", mime.Bundle{mime.KindText: []byte("x")})
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil || got.ID != rec.ID {
		t.Errorf("Get = %+v", got)
	}

	// Missing record is nil, nil
	got, err = s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get missing error: %v", err)
	}
	if got != nil {
		t.Error("missing record should be nil")
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	old := NewRecord("a", nil)
	old.CreatedAt = time.Now().Add(-time.Hour)
	recent := NewRecord("b", nil)

	_ = s.Put(ctx, old)
	_ = s.Put(ctx, recent)

	records, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List = %d records, want 2", len(records))
	}
	if records[0].ID != recent.ID {
		t.Error("List should return newest first")
	}

	// Limit applies
	records, _ = s.List(ctx, 1)
	if len(records) != 1 {
		t.Errorf("List with limit 1 = %d records", len(records))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := NewRecord("a", nil)
	_ = s.Put(ctx, rec)

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	got, _ := s.Get(ctx, rec.ID)
	if got != nil {
		t.Error("record should be gone after Delete")
	}

	// Deleting a missing record is not an error
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}
