package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store on a firestore client. Paths map 1:1 to
// firestore document and collection paths.
type FirestoreStore struct {
	Client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{Client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, path string) (Doc, error) {
	snap, err := s.Client.Doc(path).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Doc(snap.Data()), nil
}

func (s *FirestoreStore) Set(ctx context.Context, path string, fields Doc, merge bool) error {
	ref := s.Client.Doc(path)
	if merge {
		_, err := ref.Set(ctx, map[string]interface{}(fields), firestore.MergeAll)
		return err
	}
	_, err := ref.Set(ctx, map[string]interface{}(fields))
	return err
}

func (s *FirestoreStore) Update(ctx context.Context, path string, fields Doc) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := s.Client.Doc(path).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (s *FirestoreStore) Delete(ctx context.Context, path string) error {
	_, err := s.Client.Doc(path).Delete(ctx)
	return err
}

func (s *FirestoreStore) Add(ctx context.Context, collection string, fields Doc) (string, error) {
	ref, _, err := s.Client.Collection(collection).Add(ctx, map[string]interface{}(fields))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection, field, op string, value interface{}, limit int) ([]Snapshot, error) {
	q := s.Client.Collection(collection).Where(field, op, value)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return collect(q.Documents(ctx))
}

func (s *FirestoreStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	return collect(s.Client.Collection(collection).Documents(ctx))
}

func (s *FirestoreStore) Transact(ctx context.Context, path string, fn func(Doc) (Doc, error)) error {
	ref := s.Client.Doc(path)
	return s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		fields, err := fn(Doc(snap.Data()))
		if err != nil {
			return err
		}
		return tx.Set(ref, map[string]interface{}(fields), firestore.MergeAll)
	})
}

func collect(it *firestore.DocumentIterator) ([]Snapshot, error) {
	defer it.Stop()
	var out []Snapshot
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Snapshot{ID: snap.Ref.ID, Data: Doc(snap.Data())})
	}
}
