// Package store persists rendered bundles for later retrieval.
//
// The HTTP API stores every bundle it renders as a Record and serves it back
// by ID. Two backends are provided: an in-memory store for development and
// tests, and a MongoDB store for deployments that keep render history.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// Record is one stored render: the object's type, when it was rendered, and
// every representation produced.
type Record struct {
	ID              string                `json:"id" bson:"_id"`
	TypeName        string                `json:"type_name" bson:"type_name"`
	CreatedAt       time.Time             `json:"created_at" bson:"created_at"`
	Representations []mime.Representation `json:"representations" bson:"representations"`
}

// NewRecord creates a record for a rendered bundle with a fresh ID.
func NewRecord(typeName string, bundle mime.Bundle) Record {
	return Record{
		ID:              uuid.NewString(),
		TypeName:        typeName,
		CreatedAt:       time.Now().UTC(),
		Representations: bundle.Representations(),
	}
}

// Bundle reconstructs the record's representations as a bundle.
func (r *Record) Bundle() mime.Bundle {
	b := make(mime.Bundle, len(r.Representations))
	for _, rep := range r.Representations {
		b[rep.Kind] = rep.Data
	}
	return b
}

// Store is the interface for bundle storage backends.
type Store interface {
	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID.
	// Returns nil, nil if the record doesn't exist.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns the most recent records, newest first.
	// A limit of 0 applies the backend default.
	List(ctx context.Context, limit int) ([]Record, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// DefaultListLimit bounds List when the caller passes no limit.
const DefaultListLimit = 50
