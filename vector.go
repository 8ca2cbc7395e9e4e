package vector

// rep is the representation tag of a vector: no storage at all, a single
// element held inline, or a handle to a reference-counted heap block.
type rep uint8

const (
	repEmpty rep = iota
	repInline
	repShared
)

// Vector is a growable array with copy-on-write value semantics.
// Vectors of zero or one element carry the element inline and never
// allocate; larger vectors share a reference-counted heap buffer between
// clones until one side mutates.
//
// The zero value is an empty vector, ready for use:
//
//	var v vector.Vector[int]
//	v.Push(42)
//
// Clone is the copy operation. Plain struct assignment duplicates the
// handle without adjusting the reference count and therefore creates an
// alias of the same vector, not an independent logical copy.
type Vector[T any] struct {
	tag rep
	one T
	big shared[T]
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	capacity int
}

// WithCapacity is an option to pre-allocate room for n elements. The
// vector starts out empty; appends up to n will not reallocate.
//
// Use it like this:
//
//	vec := vector.New[int](vector.WithCapacity(64))
func WithCapacity(n int) Option {
	return Option{capacity: n}
}

// New constructs an empty vector with options, if you need any.
func New[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		if option.capacity > 0 {
			v.big.reserve(option.capacity)
			v.tag = repShared
		}
	}
	return v
}

// Of constructs a vector holding the given values, in order. One value
// stays inline; more than one goes to a heap block of exact capacity.
func Of[T any](values ...T) Vector[T] {
	switch len(values) {
	case 0:
		return Vector[T]{}
	case 1:
		return Vector[T]{tag: repInline, one: values[0]}
	}
	b := newBlock[T](len(values))
	copy(b.data, values)
	b.size = len(values)
	return Vector[T]{tag: repShared, big: shared[T]{blk: b}}
}

// FromSlice constructs a vector holding a copy of the elements of s.
// The vector does not retain s.
func FromSlice[T any](s []T) Vector[T] {
	return Of(s...)
}

// Filled constructs a vector of n copies of value.
func Filled[T any](n int, value T) Vector[T] {
	assertThat(n >= 0, "attempt to construct vector of negative size %d", n)
	switch n {
	case 0:
		return Vector[T]{}
	case 1:
		return Vector[T]{tag: repInline, one: value}
	}
	b := newBlock[T](n)
	fillRange(b.data, value)
	b.size = n
	return Vector[T]{tag: repShared, big: shared[T]{blk: b}}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	switch v.tag {
	case repEmpty:
		return 0
	case repInline:
		return 1
	}
	return v.big.len()
}

// Cap returns the number of element slots the vector can hold before the
// next append reallocates.
func (v *Vector[T]) Cap() int {
	switch v.tag {
	case repEmpty:
		return 0
	case repInline:
		return 1
	}
	return v.big.cap()
}

// IsEmpty returns whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Clone returns a logical copy in O(1). For a heap-backed vector this
// shares the block and bumps its reference count; no element is copied
// until one side mutates.
func (v *Vector[T]) Clone() Vector[T] {
	if v.tag == repShared {
		return Vector[T]{tag: repShared, big: v.big.retain()}
	}
	return Vector[T]{tag: v.tag, one: v.one}
}

// Release drops the vector's reference to its heap block, if any, and
// resets it to empty. Optional under garbage collection; calling it when
// a clone goes out of use keeps the sharing accounting tight, so that
// the surviving clone can mutate in place instead of cloning the block.
func (v *Vector[T]) Release() {
	v.big.release()
	*v = Vector[T]{}
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var none T
	switch v.tag {
	case repEmpty:
		return none, errIndex(i, 0)
	case repInline:
		if i != 0 {
			return none, errIndex(i, 1)
		}
		return v.one, nil
	}
	if i < 0 || i >= v.big.len() {
		return none, errIndex(i, v.big.len())
	}
	return v.big.get(i), nil
}

// Set overwrites the element at index i. For a shared block this clones
// the block first, leaving other vectors untouched.
func (v *Vector[T]) Set(i int, value T) error {
	switch v.tag {
	case repEmpty:
		return errIndex(i, 0)
	case repInline:
		if i != 0 {
			return errIndex(i, 1)
		}
		v.one = value
		return nil
	}
	if i < 0 || i >= v.big.len() {
		return errIndex(i, v.big.len())
	}
	v.big.set(i, value)
	return nil
}

// Mut returns a pointer to the element at index i for in-place
// mutation, passing the copy-on-write gate first. The pointer is valid
// until the next operation that replaces the backing buffer.
func (v *Vector[T]) Mut(i int) (*T, error) {
	switch v.tag {
	case repEmpty:
		return nil, errIndex(i, 0)
	case repInline:
		if i != 0 {
			return nil, errIndex(i, 1)
		}
		return &v.one, nil
	}
	if i < 0 || i >= v.big.len() {
		return nil, errIndex(i, v.big.len())
	}
	return v.big.mut(i), nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.Len() == 0 {
		var none T
		return none, errEmpty("front")
	}
	if v.tag == repInline {
		return v.one, nil
	}
	return v.big.get(0), nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.Len() == 0 {
		var none T
		return none, errEmpty("back")
	}
	if v.tag == repInline {
		return v.one, nil
	}
	return v.big.get(v.big.len() - 1), nil
}

// Push appends value. Amortized O(1). The first element stays inline; a
// second element promotes the vector to a heap block.
func (v *Vector[T]) Push(value T) {
	switch v.tag {
	case repEmpty:
		v.tag = repInline
		v.one = value
	case repInline:
		tracer().Debugf("promoting inline vector to heap block")
		b := newBlock[T](2)
		b.data[0] = v.one
		b.data[1] = value
		b.size = 2
		v.big = shared[T]{blk: b}
		v.tag = repShared
		var none T
		v.one = none
	default:
		v.big.push(value)
	}
}

// Pop removes the last element. A one-element vector demotes back to
// empty; a heap-backed vector keeps its capacity.
func (v *Vector[T]) Pop() error {
	switch v.tag {
	case repEmpty:
		return errEmpty("pop")
	case repInline:
		*v = Vector[T]{}
		return nil
	}
	if v.big.len() == 0 {
		return errEmpty("pop")
	}
	v.big.pop()
	return nil
}

// Insert places value at position i, shifting the elements at i and
// after one to the right. i may equal Len, which appends.
func (v *Vector[T]) Insert(i int, value T) error {
	switch v.tag {
	case repEmpty:
		if i != 0 {
			return errIndex(i, 0)
		}
		v.Push(value)
		return nil
	case repInline:
		if i < 0 || i > 1 {
			return errIndex(i, 1)
		}
		tracer().Debugf("promoting inline vector to heap block on insert at %d", i)
		b := newBlock[T](2)
		if i == 0 {
			b.data[0] = value
			b.data[1] = v.one
		} else {
			b.data[0] = v.one
			b.data[1] = value
		}
		b.size = 2
		v.big = shared[T]{blk: b}
		v.tag = repShared
		var none T
		v.one = none
		return nil
	}
	if i < 0 || i > v.big.len() {
		return errIndex(i, v.big.len())
	}
	v.big.insert(i, value)
	return nil
}

// Erase removes the elements in [from, to). An empty range is a no-op.
func (v *Vector[T]) Erase(from, to int) error {
	length := v.Len()
	if from < 0 || from > to || to > length {
		return errRange(from, to, length)
	}
	if from == to {
		return nil
	}
	if v.tag == repInline { // from == 0, to == 1
		*v = Vector[T]{}
		return nil
	}
	v.big.erase(from, to)
	return nil
}

// EraseAt removes the single element at index i.
func (v *Vector[T]) EraseAt(i int) error {
	if i < 0 || i >= v.Len() {
		return errIndex(i, v.Len())
	}
	return v.Erase(i, i+1)
}

// Reserve grows the capacity to at least n, promoting an inline or
// empty vector to a heap block. A no-op if the capacity suffices.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	switch v.tag {
	case repEmpty:
		v.big.reserve(n)
		v.tag = repShared
	case repInline:
		tracer().Debugf("promoting inline vector to heap block of capacity %d", n)
		b := newBlock[T](n)
		b.data[0] = v.one
		b.size = 1
		v.big = shared[T]{blk: b}
		v.tag = repShared
		var none T
		v.one = none
	default:
		v.big.reserve(n)
	}
}

// ShrinkToFit reduces the capacity to the current size. A heap block
// shrunk to zero elements is released and the vector demotes to empty.
func (v *Vector[T]) ShrinkToFit() {
	if v.tag != repShared {
		return
	}
	v.big.shrinkToFit()
	if v.big.blk == nil {
		v.tag = repEmpty
	}
}

// Resize brings the vector to exactly n elements, filling new slots
// with the zero value of T. Negative n panics.
func (v *Vector[T]) Resize(n int) {
	var none T
	v.ResizeWith(n, none)
}

// ResizeWith brings the vector to exactly n elements, filling new slots
// with copies of fill. Negative n panics.
func (v *Vector[T]) ResizeWith(n int, fill T) {
	assertThat(n >= 0, "attempt to resize vector to negative size %d", n)
	switch v.tag {
	case repEmpty:
		switch {
		case n == 0:
			return
		case n == 1:
			v.tag = repInline
			v.one = fill
		default:
			v.big.resize(n, fill)
			v.tag = repShared
		}
	case repInline:
		switch {
		case n == 0:
			*v = Vector[T]{}
		case n == 1:
			return
		default:
			tracer().Debugf("promoting inline vector to heap block on resize to %d", n)
			b := newBlock[T](n)
			b.data[0] = v.one
			fillRange(b.data[1:], fill)
			b.size = n
			v.big = shared[T]{blk: b}
			v.tag = repShared
			var none T
			v.one = none
		}
	default:
		v.big.resize(n, fill)
	}
}

// Clear empties the vector. A heap-backed vector releases its block and
// demotes to the empty representation, dropping its capacity.
func (v *Vector[T]) Clear() {
	if v.tag == repShared {
		tracer().Debugf("demoting heap-backed vector to empty")
	}
	v.big.release()
	*v = Vector[T]{}
}

// Assign replaces the contents with the given values, releasing any
// previously held block.
func (v *Vector[T]) Assign(values ...T) {
	v.big.release()
	*v = Of(values...)
}

// Slice returns the logical sequence as a freshly allocated slice. The
// result does not alias the vector's storage; for an empty vector it is
// nil.
func (v *Vector[T]) Slice() []T {
	switch v.tag {
	case repEmpty:
		return nil
	case repInline:
		return []T{v.one}
	}
	if v.big.len() == 0 {
		return nil
	}
	out := make([]T, v.big.len())
	copy(out, v.big.blk.live())
	return out
}

// Swap exchanges the contents of a and b in O(1), whatever their
// representations. No element is moved or copied.
func Swap[T any](a, b *Vector[T]) {
	*a, *b = *b, *a
}

// at returns the element at i without diagnostics; callers guarantee
// 0 <= i < Len.
func (v *Vector[T]) at(i int) T {
	if v.tag == repInline {
		return v.one
	}
	return v.big.get(i)
}
