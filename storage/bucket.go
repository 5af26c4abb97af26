// Package storage is the seam between the services and the object store.
// The browse endpoints synthesize a directory tree out of flat object
// keys, so listing by key prefix is the central operation.
package storage

import (
	"context"
	"fmt"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type Bucket interface {
	// List returns the keys of every object whose name starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	// PublicURL returns the stable public URL of an object.
	PublicURL(key string) string
	SignedURL(key string, ttl time.Duration) (string, error)
}

// GCSBucket implements Bucket on a Cloud Storage bucket handle.
type GCSBucket struct {
	Name   string
	Handle *gcs.BucketHandle
}

func NewGCSBucket(name string, handle *gcs.BucketHandle) *GCSBucket {
	return &GCSBucket{Name: name, Handle: handle}
}

func (b *GCSBucket) List(ctx context.Context, prefix string) ([]string, error) {
	it := b.Handle.Objects(ctx, &gcs.Query{Prefix: prefix})
	var keys []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			return keys, nil
		}
		if err != nil {
			return nil, err
		}
		keys = append(keys, attrs.Name)
	}
}

func (b *GCSBucket) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	w := b.Handle.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (b *GCSBucket) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.Name, key)
}

func (b *GCSBucket) SignedURL(key string, ttl time.Duration) (string, error) {
	return b.Handle.SignedURL(key, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
}
