package attr

import "sync"

// Store is the per-instance mapping from attribute name to stored value.
// The zero value is ready to use; embed it in an owner struct:
//
//	type Report struct {
//		attr.Store
//		Path string
//	}
//
// The promoted CachedValues method then satisfies Owner for *Report.
//
// Store's internal lock protects the map itself: entries are installed and
// observed whole, and distinct attributes sharing one owner never corrupt
// shared state. It does NOT serialize computations — under concurrent cold
// reads of a single attribute both callers may compute and the last install
// wins. Use Options.Guarded when the computation must run at most once.
type Store struct {
	mu sync.Mutex
	m  map[string]entry
}

// entry is a stored value plus its creation time (UnixNano).
// Entries are replaced whole, never mutated in place.
type entry struct {
	val any
	at  int64
}

// CachedValues returns s itself, satisfying Owner for types embedding Store.
func (s *Store) CachedValues() *Store { return s }

// Len returns the number of attribute values currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *Store) load(name string) (entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[name]
	return e, ok
}

func (s *Store) install(name string, e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]entry)
	}
	s.m[name] = e
}

func (s *Store) remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, name)
}
