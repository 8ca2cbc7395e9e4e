/*
Package vector implements a growable array container with copy-on-write
sharing and value semantics, designed for use-cases similar to Go slices.

A Vector has copy-on-write behaviour: cloning a vector is O(1) and shares
the backing buffer between the original and the clone. The buffer is
reference-counted; the first mutating access on either side clones the
buffer first, leaving the other side unmodified. Thus, most of the memory
is shared between logical copies until one of them diverges, transparently
to clients.

Vectors holding zero or one element carry the element inline and never
touch the heap. Pushing a second element promotes the vector to a shared
heap buffer; clearing a vector releases the buffer again.

Vectors are not safe for concurrent mutation. Reference counts are not
atomic: clones that will be handed to another goroutine should be forced
private first (e.g. via Slice), or access must be serialized externally.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.vector'.
func tracer() tracing.Trace {
	return tracing.Select("cow.vector")
}
