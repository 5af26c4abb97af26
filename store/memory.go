package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store used by the service tests. It keeps
// documents keyed by full path and emulates the few query shapes the
// services rely on.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]Doc
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Doc)}
}

func (s *MemoryStore) Get(ctx context.Context, path string) (Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[path]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(d), nil
}

func (s *MemoryStore) Set(ctx context.Context, path string, fields Doc, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if merge {
		if existing, ok := s.docs[path]; ok {
			for k, v := range fields {
				existing[k] = v
			}
			return nil
		}
	}
	s.docs[path] = clone(fields)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.docs[path]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
	return nil
}

func (s *MemoryStore) Add(ctx context.Context, collection string, fields Doc) (string, error) {
	id := uuid.NewString()
	return id, s.Set(ctx, collection+"/"+id, fields, false)
}

func (s *MemoryStore) Query(ctx context.Context, collection, field, op string, value interface{}, limit int) ([]Snapshot, error) {
	all, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	var out []Snapshot
	for _, snap := range all {
		if matches(snap.Data[field], op, value) {
			out = append(out, snap)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := collection + "/"
	var out []Snapshot
	for path, d := range s.docs {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		id := strings.TrimPrefix(path, prefix)
		if strings.Contains(id, "/") {
			continue // document of a nested collection
		}
		out = append(out, Snapshot{ID: id, Data: clone(d)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Transact(ctx context.Context, path string, fn func(Doc) (Doc, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.docs[path]
	if !ok {
		return ErrNotFound
	}
	fields, err := fn(clone(existing))
	if err != nil {
		return err
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func matches(have interface{}, op string, want interface{}) bool {
	switch op {
	case "==":
		return have == want
	case "array-contains":
		arr, ok := have.([]string)
		if !ok {
			if raw, ok2 := have.([]interface{}); ok2 {
				for _, v := range raw {
					if v == want {
						return true
					}
				}
			}
			return false
		}
		for _, v := range arr {
			if v == want {
				return true
			}
		}
	}
	return false
}

func clone(d Doc) Doc {
	out := make(Doc, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
