package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"buildbid/internal/usecase/interfaces"
)

// memoryStore is an in-process IDocumentStore with the same conditional semantics
// as the DynamoDB table.
type memoryStore struct {
	mu   sync.RWMutex
	docs map[interfaces.DocumentKey]interfaces.Document
}

var _ interfaces.IDocumentStore = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[interfaces.DocumentKey]interfaces.Document{}}
}

func (s *memoryStore) Get(_ context.Context, key interfaces.DocumentKey) (interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[key], nil
}

func (s *memoryStore) Put(_ context.Context, doc interfaces.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.Key] = doc
	return nil
}

func (s *memoryStore) PutIfAbsent(_ context.Context, doc interfaces.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doc.Key]; ok {
		return fmt.Errorf("%w: %s/%s", interfaces.ErrConditionFailed, doc.Key.PK, doc.Key.SK)
	}
	s.docs[doc.Key] = doc
	return nil
}

func (s *memoryStore) TransactPut(_ context.Context, items []interfaces.TransactItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		cur, ok := s.docs[it.Document.Key]
		if (ok && it.IfAbsent) || (it.IfVersion > 0 && (!ok || cur.Version != it.IfVersion)) {
			return fmt.Errorf("%w: %s/%s", interfaces.ErrConditionFailed, it.Document.Key.PK, it.Document.Key.SK)
		}
	}
	for _, it := range items {
		s.docs[it.Document.Key] = it.Document
	}
	return nil
}

func (s *memoryStore) QueryByPartitionPrefix(_ context.Context, pk, skPrefix string) ([]interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []interfaces.Document{}
	for k, doc := range s.docs {
		if k.PK == pk && strings.HasPrefix(k.SK, skPrefix) {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.SK < out[j].Key.SK })
	return out, nil
}

func (s *memoryStore) QueryByIndex(_ context.Context, index, key, skPrefix string) ([]interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	indexKeys := func(d interfaces.Document) (string, string) {
		if index == interfaces.IndexSoW {
			return d.GSI1PK, d.GSI1SK
		}
		return d.GSI2PK, d.GSI2SK
	}
	out := []interfaces.Document{}
	for _, doc := range s.docs {
		pk, sk := indexKeys(doc)
		if pk != "" && pk == key && strings.HasPrefix(sk, skPrefix) {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		_, a := indexKeys(out[i])
		_, b := indexKeys(out[j])
		return a < b
	})
	return out, nil
}
