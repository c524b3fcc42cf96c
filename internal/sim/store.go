package sim

// Store is a bounded, newest-first sequence of items backed by a ring.
// Index 0 is the newest item. Pushing onto a full store evicts the oldest.
type Store struct {
	buf  []Item
	head int
	n    int
}

func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{buf: make([]Item, capacity)}
}

func (s *Store) Len() int { return s.n }
func (s *Store) Cap() int { return len(s.buf) }

func (s *Store) slot(i int) int {
	return (s.head + i) % len(s.buf)
}

// PushNewest inserts it at the head. When the store was already full the
// evicted tail item is returned with ok set.
func (s *Store) PushNewest(it Item) (evicted Item, ok bool) {
	size := len(s.buf)
	s.head = (s.head - 1 + size) % size
	if s.n == size {
		// the new head slot is the old tail
		evicted, ok = s.buf[s.head], true
	} else {
		s.n++
	}
	s.buf[s.head] = it
	return evicted, ok
}

// At returns the item at logical index i
func (s *Store) At(i int) (Item, bool) {
	if i < 0 || i >= s.n {
		return Item{}, false
	}
	return s.buf[s.slot(i)], true
}

// Slice copies items first..last inclusive, clamped to the stored range.
// The copy is safe to hold after the store changes.
func (s *Store) Slice(first, last int) []Item {
	if s.n == 0 {
		return nil
	}
	first = max(first, 0)
	last = min(last, s.n-1)
	if first > last {
		return nil
	}
	out := make([]Item, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, s.buf[s.slot(i)])
	}
	return out
}

// Each calls fn for every item, newest first, with a pointer into the store
func (s *Store) Each(fn func(i int, it *Item)) {
	for i := 0; i < s.n; i++ {
		fn(i, &s.buf[s.slot(i)])
	}
}
