// Package buffer implements a fixed-capacity, stack-allocated sequence.
//
// It exists so that the normalization engine in [github.com/westwick/unorm]
// keeps its working sequences of code points and combining classes (its
// output, combining-class and decomposition buffers) in fixed-size
// storage rather than in growable slices.
package buffer

import (
    "github.com/westwick/unorm/must"
    "github.com/westwick/unorm/operator"
)

// N is the fixed capacity of a [Buffer]. It must exceed the largest
// possible expansion of a single code point under full compatibility
// decomposition (18, for characters such as U+FDFA ARABIC LIGATURE
// SALLALLAHOU ALAYHE WASALLAM) plus room for several combining marks
// that might immediately follow it. 32 has been checked against the
// Unicode conformance corpus and has never been observed to overflow
// on well-formed input.
const N = 32

// Buffer is a fixed-capacity array of up to N values of type T, with a
// length, used in place of a slice so that callers avoid heap allocation.
// The zero value is an empty buffer ready to use.
type Buffer[T comparable] struct {
    data [N]T
    pos  int
}

// Len returns the number of valid elements currently in the buffer.
func (b *Buffer[T]) Len() int {
    return b.pos
}

// Cap returns the buffer's fixed capacity, N.
func (b *Buffer[T]) Cap() int {
    return N
}

// Full returns true if the buffer has no remaining free slots.
func (b *Buffer[T]) Full() bool {
    return b.pos >= N
}

// Push appends x to the end of the buffer. It is a programming error to
// push onto a full buffer; callers must force a flush before that point
// (see the streaming engine's "one slot left" rule).
func (b *Buffer[T]) Push(x T) {
    must.True(b.pos < N)
    b.data[b.pos] = x
    b.pos++
}

// Pop removes and returns the last element of the buffer. It is a
// programming error to pop an empty buffer.
func (b *Buffer[T]) Pop() T {
    must.True(b.pos > 0)
    b.pos--
    x := b.data[b.pos]
    b.data[b.pos] = operator.Zero[T]() // don't pin T's old value if it's a pointer/interface
    return x
}

// Get returns the element at index i, where 0 <= i < Len().
func (b *Buffer[T]) Get(i int) T {
    must.True((i >= 0) && (i < b.pos))
    return b.data[i]
}

// Set overwrites the element at index i, where 0 <= i < Len().
func (b *Buffer[T]) Set(i int, x T) {
    must.True((i >= 0) && (i < b.pos))
    b.data[i] = x
}

// Swap exchanges the elements at indexes i and j, where 0 <= i, j < Len().
func (b *Buffer[T]) Swap(i, j int) {
    b.data[i], b.data[j] = b.data[j], b.data[i]
}

// Clear empties the buffer without releasing any storage.
func (b *Buffer[T]) Clear() {
    b.pos = 0
}

// SetLen truncates the reported length of the buffer to n, where
// 0 <= n <= Len(). It is used by the canonical composer, which
// writes in place and then shrinks the buffer to the number of code
// points actually retained.
func (b *Buffer[T]) SetLen(n int) {
    must.True((n >= 0) && (n <= b.pos))
    for i := n; i < b.pos; i++ {
        b.data[i] = operator.Zero[T]()
    }
    b.pos = n
}

// Reverse reverses the order of the elements currently in the buffer.
func (b *Buffer[T]) Reverse() {
    for i, j := 0, b.pos-1; i < j; i, j = i+1, j-1 {
        b.Swap(i, j)
    }
}

// Slice returns the valid elements of the buffer as a newly allocated
// slice. It is intended for tests and for the materializing API's final
// emission step, not for the hot path.
func (b *Buffer[T]) Slice() []T {
    out := make([]T, b.pos)
    copy(out, b.data[0:b.pos])
    return out
}

// Equal reports whether a and b currently hold the same sequence of
// elements.
func Equal[T comparable](a, b *Buffer[T]) bool {
    if a.pos != b.pos {
        return false
    }
    for i := 0; i < a.pos; i++ {
        if a.data[i] != b.data[i] {
            return false
        }
    }
    return true
}
