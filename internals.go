package vector

import "fmt"

// block is the reference-counted backing buffer behind a shared vector.
// data is allocated at full capacity up front; the live elements occupy
// data[:size] and the slots in data[size:] are free. refs counts the
// handles currently bound to this block. While refs > 1 the block is
// logically read-only and every mutation has to pass the copy-on-write
// gate first.
type block[T any] struct {
	data []T
	size int
	refs int
}

func newBlock[T any](capacity int) *block[T] {
	return &block[T]{data: make([]T, capacity), refs: 1}
}

// live is the slice of elements currently stored in the block.
func (b *block[T]) live() []T {
	return b.data[:b.size]
}

// shared is a rebindable handle to a block. All positional mutation of
// the heap representation happens through a handle. Operations that have
// to replace the buffer (growth, clone-on-write, compaction) build the
// replacement block completely before releasing the old one and
// rebinding the handle, so the original sequence stays intact until the
// new one is done.
type shared[T any] struct {
	blk *block[T]
}

func (s *shared[T]) len() int {
	if s.blk == nil {
		return 0
	}
	return s.blk.size
}

func (s *shared[T]) cap() int {
	if s.blk == nil {
		return 0
	}
	return len(s.blk.data)
}

// retain produces a second handle to the same block, bumping the
// reference count.
func (s *shared[T]) retain() shared[T] {
	if s.blk != nil {
		s.blk.refs++
	}
	return shared[T]{blk: s.blk}
}

// release drops this handle's reference and unbinds it. The block itself
// is reclaimed by the garbage collector once the last reference is gone.
func (s *shared[T]) release() {
	if s.blk == nil {
		return
	}
	s.blk.refs--
	s.blk = nil
}

// rebind commits a fully built replacement block, releasing the old one.
func (s *shared[T]) rebind(b *block[T]) {
	if s.blk != nil {
		s.blk.refs--
	}
	s.blk = b
}

// ensureUnique is the copy-on-write gate: a no-op if the handle is
// unbound or holds the only reference, otherwise the block is cloned at
// unchanged capacity and the handle rebound to the private clone.
func (s *shared[T]) ensureUnique() {
	if s.blk == nil || s.blk.refs == 1 {
		return
	}
	tracer().Debugf("cloning block of size %d for private mutation", s.blk.size)
	clone := newBlock[T](len(s.blk.data))
	copy(clone.data, s.blk.live())
	clone.size = s.blk.size
	s.rebind(clone)
}

// grownCap decides the capacity for a buffer replacement: double (with a
// floor of 2) if the block is full, unchanged for a pure clone.
func (s *shared[T]) grownCap() int {
	if s.len() == s.cap() {
		return max(2, s.cap()*2)
	}
	return s.cap()
}

// push appends v. The element is written in place when the handle is
// unique and has a free slot; otherwise a replacement block is built
// first (growth policy, see grownCap).
func (s *shared[T]) push(v T) {
	if s.blk == nil || s.blk.size == len(s.blk.data) || s.blk.refs > 1 {
		capacity := s.grownCap()
		tracer().Debugf("push rebuilds block: capacity %d → %d", s.cap(), capacity)
		b := newBlock[T](capacity)
		if s.blk != nil {
			copy(b.data, s.blk.live())
			b.size = s.blk.size
		}
		b.data[b.size] = v
		b.size++
		s.rebind(b)
		return
	}
	s.blk.data[s.blk.size] = v
	s.blk.size++
}

// pop removes the last element. The caller guarantees size > 0.
func (s *shared[T]) pop() {
	assertThat(s.len() > 0, "attempt to pop from empty block")
	s.ensureUnique()
	s.blk.size--
	clear(s.blk.data[s.blk.size : s.blk.size+1]) // let the GC at the element
}

// get returns the element at i. The caller guarantees 0 <= i < size.
func (s *shared[T]) get(i int) T {
	assertThat(i >= 0 && i < s.len(), "block index %d out of range 0…%d", i, s.len())
	return s.blk.data[i]
}

// set overwrites the element at i, passing the copy-on-write gate first.
// The caller guarantees 0 <= i < size.
func (s *shared[T]) set(i int, v T) {
	assertThat(i >= 0 && i < s.len(), "block index %d out of range 0…%d", i, s.len())
	s.ensureUnique()
	s.blk.data[i] = v
}

// mut hands out a pointer to the element at i for in-place mutation,
// passing the copy-on-write gate first.
func (s *shared[T]) mut(i int) *T {
	assertThat(i >= 0 && i < s.len(), "block index %d out of range 0…%d", i, s.len())
	s.ensureUnique()
	return &s.blk.data[i]
}

// insert places v at position i, shifting the tail right. Appending at
// i == size is a push. With a unique block and spare capacity the tail
// is shifted in place; otherwise a replacement block is built from
// prefix, v and suffix.
func (s *shared[T]) insert(i int, v T) {
	assertThat(i >= 0 && i <= s.len(), "block insert position %d out of range 0…%d", i, s.len())
	if i == s.len() {
		s.push(v)
		return
	}
	if s.blk.size == len(s.blk.data) || s.blk.refs > 1 {
		capacity := s.grownCap()
		tracer().Debugf("insert at %d rebuilds block: capacity %d → %d", i, s.cap(), capacity)
		b := newBlock[T](capacity)
		copy(b.data, s.blk.data[:i])
		b.data[i] = v
		copy(b.data[i+1:], s.blk.data[i:s.blk.size])
		b.size = s.blk.size + 1
		s.rebind(b)
		return
	}
	d := s.blk.data
	s.blk.size++
	copy(d[i+1:s.blk.size], d[i:s.blk.size-1])
	d[i] = v
}

// erase removes the elements in [from, to). The caller guarantees
// 0 <= from <= to <= size. Three cases: a trailing range is truncated in
// place (after the gate); a mid-range on a shared block compacts into a
// fresh block at unchanged capacity; a mid-range on a unique block
// shifts the suffix left and clears the vacated slots.
func (s *shared[T]) erase(from, to int) {
	assertThat(0 <= from && from <= to && to <= s.len(),
		"block erase range [%d,%d) out of range 0…%d", from, to, s.len())
	if from == to {
		return
	}
	if to == s.blk.size {
		s.ensureUnique()
		clear(s.blk.data[from:s.blk.size])
		s.blk.size = from
		return
	}
	if s.blk.refs > 1 {
		b := newBlock[T](len(s.blk.data))
		copy(b.data, s.blk.data[:from])
		copy(b.data[from:], s.blk.data[to:s.blk.size])
		b.size = s.blk.size - (to - from)
		s.rebind(b)
		return
	}
	d := s.blk.data
	n := copy(d[from:], d[to:s.blk.size])
	newSize := from + n
	clear(d[newSize:s.blk.size])
	s.blk.size = newSize
}

// reserve grows the capacity to exactly n. A no-op if the block already
// holds at least that much.
func (s *shared[T]) reserve(n int) {
	if n <= s.cap() {
		return
	}
	tracer().Debugf("reserving capacity %d (was %d)", n, s.cap())
	b := newBlock[T](n)
	if s.blk != nil {
		copy(b.data, s.blk.live())
		b.size = s.blk.size
	}
	s.rebind(b)
}

// shrinkToFit reduces the capacity to the current size. An empty block
// is released entirely, leaving the handle unbound.
func (s *shared[T]) shrinkToFit() {
	if s.blk == nil || s.blk.size == len(s.blk.data) {
		return
	}
	if s.blk.size == 0 {
		s.release()
		return
	}
	b := newBlock[T](s.blk.size)
	copy(b.data, s.blk.live())
	b.size = s.blk.size
	s.rebind(b)
}

// resize brings the block to exactly n elements, filling new slots with
// fill. Shrinking keeps the capacity; growing fills in place when the
// unique block has room, and otherwise rebuilds at max(capacity, n).
func (s *shared[T]) resize(n int, fill T) {
	assertThat(n >= 0, "block resize to negative size %d", n)
	if n <= s.len() {
		s.shorten(n)
		return
	}
	capacity := max(s.cap(), n)
	if s.blk == nil || capacity > len(s.blk.data) || s.blk.refs > 1 {
		tracer().Debugf("resize to %d rebuilds block: capacity %d → %d", n, s.cap(), capacity)
		b := newBlock[T](capacity)
		if s.blk != nil {
			copy(b.data, s.blk.live())
			b.size = s.blk.size
		}
		fillRange(b.data[b.size:n], fill)
		b.size = n
		s.rebind(b)
		return
	}
	fillRange(s.blk.data[s.blk.size:n], fill)
	s.blk.size = n
}

// shorten truncates to n elements, n <= size. A shared block is replaced
// by a prefix copy at unchanged capacity rather than gated through
// ensureUnique, which would copy elements only to destroy them again.
func (s *shared[T]) shorten(n int) {
	if s.blk == nil || n == s.blk.size {
		return
	}
	if s.blk.refs > 1 {
		b := newBlock[T](len(s.blk.data))
		copy(b.data, s.blk.data[:n])
		b.size = n
		s.rebind(b)
		return
	}
	clear(s.blk.data[n:s.blk.size])
	s.blk.size = n
}

func fillRange[T any](d []T, v T) {
	for i := range d {
		d[i] = v
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
