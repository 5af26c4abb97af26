package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryBucket is the in-memory Bucket used by tests.
type MemoryBucket struct {
	BucketName string

	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryBucket(name string) *MemoryBucket {
	return &MemoryBucket{BucketName: name, objects: make(map[string][]byte)}
}

func (b *MemoryBucket) List(ctx context.Context, prefix string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var keys []string
	for k := range b.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *MemoryBucket) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBucket) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.BucketName, key)
}

func (b *MemoryBucket) SignedURL(key string, ttl time.Duration) (string, error) {
	return b.PublicURL(key) + "?signed=1", nil
}
