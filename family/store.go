package family

import (
	"github.com/cespare/xxhash/v2"
)

// entryStore is an insertion-ordered collection of entries with at most
// one entry per equivalence class of parameters.
//
// Lookups scan in insertion order using the injected equality, since
// parameters are not assumed comparable or hashable. When a partition
// key function is supplied, entries are additionally bucketed by the
// xxhash of their key string and lookups only scan the matching bucket;
// the equality function still has the final word inside a bucket.
type entryStore[P, C any] struct {
	equals  Equality[P]
	keyFn   func(P) string
	entries []*entry[P, C]
	buckets map[uint64][]*entry[P, C]
}

func newEntryStore[P, C any](equals Equality[P], keyFn func(P) string) *entryStore[P, C] {
	s := &entryStore[P, C]{
		equals: equals,
		keyFn:  keyFn,
	}
	if keyFn != nil {
		s.buckets = make(map[uint64][]*entry[P, C])
	}
	return s
}

func (s *entryStore[P, C]) hashOf(param P) uint64 {
	return xxhash.Sum64String(s.keyFn(param))
}

func (s *entryStore[P, C]) lookup(param P) (*entry[P, C], bool) {
	if s.keyFn != nil {
		for _, e := range s.buckets[s.hashOf(param)] {
			if s.equals(e.param, param) {
				return e, true
			}
		}
		return nil, false
	}
	for _, e := range s.entries {
		if s.equals(e.param, param) {
			return e, true
		}
	}
	return nil, false
}

// insert appends a new entry. The caller must have established via
// lookup that no equivalent entry exists.
func (s *entryStore[P, C]) insert(e *entry[P, C]) {
	s.entries = append(s.entries, e)
	if s.keyFn != nil {
		h := s.hashOf(e.param)
		s.buckets[h] = append(s.buckets[h], e)
	}
}

// remove deletes the entry equal to param, preserving insertion order
// of the remainder. Reports whether an entry was removed.
func (s *entryStore[P, C]) remove(param P) (*entry[P, C], bool) {
	for i, e := range s.entries {
		if s.equals(e.param, param) {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.unbucket(e)
			return e, true
		}
	}
	return nil, false
}

// removeIf deletes every entry matched by shouldRemove, preserving
// insertion order of survivors, and returns the removed entries in
// their original order.
func (s *entryStore[P, C]) removeIf(shouldRemove func(*entry[P, C]) bool) []*entry[P, C] {
	var removed []*entry[P, C]
	kept := s.entries[:0]
	for _, e := range s.entries {
		if shouldRemove(e) {
			removed = append(removed, e)
			s.unbucket(e)
		} else {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
	return removed
}

func (s *entryStore[P, C]) unbucket(e *entry[P, C]) {
	if s.keyFn == nil {
		return
	}
	h := s.hashOf(e.param)
	bucket := s.buckets[h]
	for i, cand := range bucket {
		if cand == e {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.buckets, h)
	} else {
		s.buckets[h] = bucket
	}
}

func (s *entryStore[P, C]) len() int {
	return len(s.entries)
}

// params returns the stored parameters in insertion order.
func (s *entryStore[P, C]) params() []P {
	out := make([]P, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.param
	}
	return out
}
