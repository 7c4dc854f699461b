package pipeline

import (
	"reflect"
	"sort"
)

// Snapshot is an immutable key/value view of a domain entity at one version.
// It is never mutated in place: every transformation returns a new Snapshot.
//
// A Snapshot derived from an update carries a reference to its immediate
// predecessor. Guards use the predecessor to answer questions about "the
// previous state" (status transition legality, freeze conditions); it is
// bookkeeping, never ownership, and never appears among the enumerable keys.
type Snapshot struct {
	values map[string]any
	prev   *Snapshot
}

// NewSnapshot creates a snapshot from the given values with no predecessor.
// The input map is copied; the caller keeps ownership of its map.
func NewSnapshot(values map[string]any) *Snapshot {
	return &Snapshot{values: copyValues(values)}
}

// newChanges creates the proposed-changes snapshot for an update, tagged with
// the snapshot it is being applied against.
func newChanges(values map[string]any, prev *Snapshot) *Snapshot {
	return &Snapshot{values: copyValues(values), prev: prev}
}

// Get returns the value stored under key in this snapshot only.
func (s *Snapshot) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present in this snapshot, regardless of value.
func (s *Snapshot) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Lookup returns the value stored under key, falling back through the
// predecessor chain. During the pre phase this gives guards the effective
// value an update would leave in place: the proposed one if the change set
// carries it, otherwise the current one.
func (s *Snapshot) Lookup(key string) (any, bool) {
	for cur := s; cur != nil; cur = cur.prev {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns the enumerable keys of this snapshot in sorted order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of enumerable keys.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// Prev returns the snapshot this one was derived from, or nil for a freshly
// created entity.
func (s *Snapshot) Prev() *Snapshot {
	return s.prev
}

// With returns a new snapshot with the given partial values overlaid on this
// one. The predecessor reference is preserved. The receiver is unchanged.
func (s *Snapshot) With(partial map[string]any) *Snapshot {
	values := copyValues(s.values)
	for k, v := range partial {
		values[k] = v
	}
	return &Snapshot{values: values, prev: s.prev}
}

// Without returns a new snapshot with the given keys removed.
func (s *Snapshot) Without(keys ...string) *Snapshot {
	values := copyValues(s.values)
	for _, k := range keys {
		delete(values, k)
	}
	return &Snapshot{values: values, prev: s.prev}
}

// Map returns a defensive copy of the snapshot's enumerable values.
func (s *Snapshot) Map() map[string]any {
	return copyValues(s.values)
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// truthy reports whether a value counts as "present" for requirement and
// validation purposes: non-nil, non-zero, and non-empty for collections.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}
