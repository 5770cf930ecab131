// Package memory holds the in-process repositories. Every collection sits
// behind its own RWMutex and hands out copies.
package memory

import (
	"context"
	"sync"
)

// store is an insertion-ordered collection keyed by id.
type store[T any] struct {
	mu       sync.RWMutex
	order    []string
	items    map[string]T
	id       func(*T) string
	clone    func(T) T
	notFound error
}

func newStore[T any](id func(*T) string, clone func(T) T, notFound error) *store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &store[T]{items: make(map[string]T), id: id, clone: clone, notFound: notFound}
}

func (s *store[T]) create(ctx context.Context, v *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.id(v)
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}
	s.items[key] = s.clone(*v)
	return nil
}

func (s *store[T]) get(ctx context.Context, key string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return nil, s.notFound
	}
	out := s.clone(v)
	return &out, nil
}

func (s *store[T]) all(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.clone(s.items[key]))
	}
	return out, nil
}

// modify runs fn on a copy of the record under the write lock and stores the
// result. Nothing is written when fn fails.
func (s *store[T]) modify(ctx context.Context, key string, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, s.notFound
	}
	work := s.clone(v)
	if err := fn(&work); err != nil {
		return nil, err
	}
	s.items[key] = s.clone(work)
	return &work, nil
}

func (s *store[T]) delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; !ok {
		return s.notFound
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
