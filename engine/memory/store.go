package memory

import (
	"encoding/json"
	"maps"
	"slices"
)

// Store maps hierarchical widget ids to retained state. Entries are created
// on first access and never evicted.
type Store[T any] struct {
	m map[string]*T
}

// Get returns the state for id, creating a zero value if none exists yet.
func (s *Store[T]) Get(id string) *T {
	if s.m == nil {
		s.m = map[string]*T{}
	}
	v, ok := s.m[id]
	if !ok {
		v = new(T)
		s.m[id] = v
	}
	return v
}

func (s *Store[T]) Has(id string) bool {
	_, ok := s.m[id]
	return ok
}

func (s *Store[T]) Len() int { return len(s.m) }

// IDs returns every id in sorted order.
func (s *Store[T]) IDs() []string {
	return slices.Sorted(maps.Keys(s.m))
}

func (s Store[T]) MarshalJSON() ([]byte, error) {
	if s.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.m)
}

func (s *Store[T]) UnmarshalJSON(b []byte) error {
	m := map[string]*T{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	for id, v := range m {
		if v == nil {
			m[id] = new(T)
		}
	}
	s.m = m
	return nil
}
