package futures

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Store is a set of promises indexed by key, for matching asynchronous
// responses back to the requests waiting on them. All promises created by
// a Store are bound to the executor given at construction. Store methods
// are safe to call from any goroutine.
type Store[K comparable, V any] struct {
	exec Executor

	mu sync.RWMutex
	m  map[K]*Promise[V]
}

func NewStore[K comparable, V any](e Executor) *Store[K, V] {
	if e == nil {
		panic("futures: nil Executor")
	}
	return &Store[K, V]{
		exec: e,
		m:    make(map[K]*Promise[V]),
	}
}

// Get returns the promise at k or nil if there is none.
func (s *Store[K, V]) Get(k K) *Promise[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[k]
}

// GetOrCreate returns the promise at k, creating it if need be.
// The second return value is true if the promise was created by this call.
func (s *Store[K, V]) GetOrCreate(k K) (*Promise[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.m[k]
	if !exists {
		p = NewPromise[V](s.exec)
		s.m[k] = p
	}
	return p, !exists
}

// Succeed resolves the promise at k with x and removes it from the store,
// so the key can be reused. It does nothing if there is no promise at k.
// The promise is resolved outside the store's lock; a callback released by
// it may safely use the store.
func (s *Store[K, V]) Succeed(k K, x V) {
	p := s.take(k)
	if p != nil {
		p.Succeed(x)
	}
}

// Fail resolves the promise at k with err and removes it from the store.
// It does nothing if there is no promise at k.
func (s *Store[K, V]) Fail(k K, err error) {
	p := s.take(k)
	if p != nil {
		p.Fail(err)
	}
}

func (s *Store[K, V]) take(k K) *Promise[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.m[k]
	if exists {
		delete(s.m, k)
	}
	return p
}

// Delete removes the promise at k without resolving it. If p is non-nil,
// the entry is only removed when it holds p.
func (s *Store[K, V]) Delete(k K, p *Promise[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p != nil && s.m[k] != p {
		return
	}
	delete(s.m, k)
}

// ForEach calls fn with every key and promise in the store, stopping early
// if fn returns false. ForEach returns false if it stopped early.
func (s *Store[K, V]) ForEach(fn func(k K, p *Promise[V]) bool) bool {
	s.mu.RLock()
	keys := maps.Keys(s.m)
	s.mu.RUnlock()
	for _, k := range keys {
		s.mu.RLock()
		p, exists := s.m[k]
		s.mu.RUnlock()
		if !exists {
			continue
		}
		if !fn(k, p) {
			return false
		}
	}
	return true
}

// Len returns the number of unresolved promises in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
