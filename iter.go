package vector

// Each calls f for every element in order, with its index, until f
// returns false. Read-only: the backing block is never cloned.
func (v *Vector[T]) Each(f func(i int, value T) bool) {
	switch v.tag {
	case repEmpty:
		return
	case repInline:
		f(0, v.one)
		return
	}
	for i, value := range v.big.blk.live() {
		if !f(i, value) {
			return
		}
	}
}

// EachReverse calls f for every element from last to first, with its
// index, until f returns false.
func (v *Vector[T]) EachReverse(f func(i int, value T) bool) {
	switch v.tag {
	case repEmpty:
		return
	case repInline:
		f(0, v.one)
		return
	}
	live := v.big.blk.live()
	for i := len(live) - 1; i >= 0; i-- {
		if !f(i, live[i]) {
			return
		}
	}
}

// EachMut calls f for every element in order with a pointer to the
// element, until f returns false. A shared block is cloned before the
// first call, so mutations through the pointers never leak into clones.
func (v *Vector[T]) EachMut(f func(i int, value *T) bool) {
	switch v.tag {
	case repEmpty:
		return
	case repInline:
		f(0, &v.one)
		return
	}
	v.big.ensureUnique()
	live := v.big.blk.live()
	for i := range live {
		if !f(i, &live[i]) {
			return
		}
	}
}

// Iterator walks a vector's elements. It operates on a snapshot of the
// sequence taken when the iterator was created: operations on the
// vector that replace its backing buffer are not reflected, in-place
// mutations are. Taking a fresh iterator restarts the walk.
type Iterator[T any] struct {
	items []T
	inx   int
	step  int
}

// Iter returns a forward iterator over the elements.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{items: v.snapshot(), inx: 0, step: 1}
}

// IterReverse returns an iterator walking the elements from last to
// first.
func (v *Vector[T]) IterReverse() *Iterator[T] {
	items := v.snapshot()
	return &Iterator[T]{items: items, inx: len(items) - 1, step: -1}
}

// Next returns the next element, and false once the sequence is
// exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.inx < 0 || it.inx >= len(it.items) {
		var none T
		return none, false
	}
	value := it.items[it.inx]
	it.inx += it.step
	return value, true
}

// snapshot returns the logical sequence for read-only traversal. For a
// heap-backed vector this aliases the live elements of the block, which
// is safe: a block visible through more than one handle is never
// mutated in place.
func (v *Vector[T]) snapshot() []T {
	switch v.tag {
	case repEmpty:
		return nil
	case repInline:
		return []T{v.one}
	}
	return v.big.blk.live()
}
