package model

import (
	"sort"
	"sync"
	"time"
)

// Snapshot is the full point-in-time state exchanged between sampler and UI.
type Snapshot struct {
	Timestamp time.Time
	System    SystemModel
	Network   NetworkModel
}

// Zero returns an empty snapshot for initialization.
func Zero() Snapshot {
	return Snapshot{
		Timestamp: time.Now(),
		System:    SystemModel{Disks: map[string]SingleDiskModel{}},
		Network:   NetworkModel{Interfaces: map[string]SingleNetModel{}},
	}
}

// Entry is one named sub-model.
type Entry[M any] struct {
	Name  string
	Model M
}

// Sorted returns the map's entries in ascending key order.
func Sorted[M any](m map[string]M) []Entry[M] {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Entry[M], 0, len(names))
	for _, name := range names {
		out = append(out, Entry[M]{Name: name, Model: m[name]})
	}
	return out
}

// Store is the shared container the sampler writes to and renderers read from.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(initial Snapshot) *Store { return &Store{snap: initial} }

// Set replaces the current snapshot.
func (s *Store) Set(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Read runs fn while holding the read lock. The lock is released when fn
// returns or panics. fn must not retain snap past the call.
func (s *Store) Read(fn func(snap *Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.snap)
}

// Timestamp of the current snapshot.
func (s *Store) Timestamp() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Timestamp
}
