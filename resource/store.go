// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package resource holds generated filter resources addressed by the stable
// identifier of the instance that owns them.
//
// Each instance writes only under its own identifier, so concurrently active
// instances never collide and consumers never observe a dangling reference:
// a regeneration replaces the value behind an identifier in place.
package resource

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// shardCount must be a power of two.
const (
	shardCount = 16
	shardMask  = shardCount - 1
)

// Store is a sharded, concurrency-safe map from instance identifier to the
// latest resource generated for that instance.
type Store[V any] struct {
	shards [shardCount]*shard[V]

	puts     atomic.Uint64
	releases atomic.Uint64
}

type shard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	s := &Store[V]{}
	for i := range s.shards {
		s.shards[i] = &shard[V]{entries: make(map[string]V)}
	}
	return s
}

func (s *Store[V]) shard(id string) *shard[V] {
	return s.shards[xxhash.Sum64String(id)&shardMask]
}

// Put stores v under id, replacing any previous value.
func (s *Store[V]) Put(id string, v V) {
	sh := s.shard(id)
	sh.mu.Lock()
	sh.entries[id] = v
	sh.mu.Unlock()
	s.puts.Add(1)
}

// Get returns the value stored under id.
func (s *Store[V]) Get(id string) (V, bool) {
	sh := s.shard(id)
	sh.mu.RLock()
	v, ok := sh.entries[id]
	sh.mu.RUnlock()
	return v, ok
}

// Release removes the value stored under id. It reports whether a value
// was present.
func (s *Store[V]) Release(id string) bool {
	sh := s.shard(id)
	sh.mu.Lock()
	_, ok := sh.entries[id]
	delete(sh.entries, id)
	sh.mu.Unlock()
	if ok {
		s.releases.Add(1)
	}
	return ok
}

// Len returns the number of stored values.
func (s *Store[V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// Stats contains store counters.
type Stats struct {
	Entries  int
	Puts     uint64
	Releases uint64
}

// Stats returns a snapshot of the store counters.
func (s *Store[V]) Stats() Stats {
	return Stats{
		Entries:  s.Len(),
		Puts:     s.puts.Load(),
		Releases: s.releases.Load(),
	}
}
