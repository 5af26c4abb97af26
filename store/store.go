// Package store is the seam between the services and the document
// database. Paths are slash-separated and hierarchical, alternating
// collection and document segments the same way firestore does
// ("OFM_name/market1/customers/bob").
package store

import (
	"context"
	"errors"
)

// Doc is one document's fields.
type Doc map[string]interface{}

// Snapshot is a document returned from a listing or query.
type Snapshot struct {
	ID   string
	Data Doc
}

var ErrNotFound = errors.New("document not found")

type Store interface {
	// Get returns the document at path, or ErrNotFound.
	Get(ctx context.Context, path string) (Doc, error)
	// Set writes fields at path, creating the document. With merge, fields
	// are merged into an existing document instead of replacing it.
	Set(ctx context.Context, path string, fields Doc, merge bool) error
	// Update merges fields into an existing document.
	Update(ctx context.Context, path string, fields Doc) error
	Delete(ctx context.Context, path string) error
	// Add creates a document with a generated id under collection.
	Add(ctx context.Context, collection string, fields Doc) (string, error)
	// Query returns up to limit documents of collection where field op
	// value holds. Supported ops: "==", "array-contains".
	Query(ctx context.Context, collection, field, op string, value interface{}, limit int) ([]Snapshot, error)
	// List returns every document in collection.
	List(ctx context.Context, collection string) ([]Snapshot, error)
	// Transact runs a single-document read-modify-write: fn receives the
	// current fields (ErrNotFound surfaces before fn runs when the document
	// is missing) and returns the fields to merge back. Used for the
	// quantity and item-count updates so concurrent writers cannot lose
	// increments.
	Transact(ctx context.Context, path string, fn func(Doc) (Doc, error)) error
}

// Int reads a numeric field, tolerating the int/int64/float64 variants
// different backends hand back.
func Int(d Doc, key string) int64 {
	switch v := d[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Str reads a string field, "" when absent.
func Str(d Doc, key string) string {
	s, _ := d[key].(string)
	return s
}
