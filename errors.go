package vector

import (
	"errors"
	"fmt"
)

// Errors reported by vector operations. Call sites wrap these with the
// offending index and the current length, so callers can test with
// errors.Is and still get a useful message.
var (
	// ErrIndexOutOfRange is reported for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("vector index out of range")

	// ErrEmptyAccess is reported for Front, Back or Pop on an empty vector.
	ErrEmptyAccess = errors.New("access to empty vector")
)

func errIndex(i, length int) error {
	return fmt.Errorf("vector: index %d with length %d: %w", i, length, ErrIndexOutOfRange)
}

func errRange(from, to, length int) error {
	return fmt.Errorf("vector: range [%d,%d) with length %d: %w", from, to, length, ErrIndexOutOfRange)
}

func errEmpty(op string) error {
	return fmt.Errorf("vector: %s: %w", op, ErrEmptyAccess)
}
