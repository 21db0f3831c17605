// Package engine implements the streaming normalization engine: the
// constant-space core that drives decomposition, canonical reordering, and
// (for the composing forms) recomposition, flushing whenever it reaches a
// safe break or is about to run out of buffer space.
//
// Memory per [Engine] instance is bounded by a small, fixed number of
// [buffer.Buffer] values; normalizing arbitrarily long input never grows
// them. An [Engine] is not safe for concurrent use by multiple goroutines,
// but independent instances never share state and so may run in parallel
// without coordination.
package engine

import (
    "unicode/utf8"

    "github.com/westwick/unorm/buffer"
    "github.com/westwick/unorm/compose"
    "github.com/westwick/unorm/decompose"
    "github.com/westwick/unorm/quickcheck"
    "github.com/westwick/unorm/reorder"
    "github.com/westwick/unorm/ucd"
)

// CGJ is U+034F Combining Grapheme Joiner, inserted as a stability guard
// when the engine is forced to flush inside a run of non-starters.
const CGJ rune = 0x034F

// Engine drives one normalization run. The zero value is not usable; use
// [New].
type Engine struct {
    form    quickcheck.Form
    outBuf  buffer.Buffer[rune]
    cccBuf  buffer.Buffer[uint8]
    lastCCC uint8
}

// New returns a freshly reset Engine for form.
func New(form quickcheck.Form) *Engine {
    return &Engine{form: form}
}

// Reset clears an Engine's internal buffers so it can be reused for a new,
// unrelated input.
func (e *Engine) Reset() {
    e.outBuf.Clear()
    e.cccBuf.Clear()
    e.lastCCC = 0
}

// Feed processes one input code point c. isLast must be true for, and only
// for, the final code point of the overall input (an empty input never
// calls Feed at all). emit is called, in order, with zero or more
// normalized code points.
func (e *Engine) Feed(c rune, isLast bool, emit func(rune)) {
    var dcpBuf buffer.Buffer[rune]
    decompose.Decompose(&dcpBuf, c, e.form.DecompositionKind())

    n := dcpBuf.Len()
    for i := 0; i < n; i++ {
        d := dcpBuf.Get(i)
        ccc := ucd.Combining(d)
        qc := ucd.QuickCheck(d)

        finished := isLast && i == n-1
        safeBreak := quickcheck.IsAllowed(qc, e.form) == quickcheck.Yes && ccc == 0
        mustFlush := finished || safeBreak || e.outBuf.Len() == buffer.N-1

        if mustFlush {
            if finished {
                e.outBuf.Push(d)
                e.cccBuf.Push(ccc)
            }

            reorder.Sort(&e.outBuf, &e.cccBuf)
            if e.form.Composes() {
                compose.Compose(&e.outBuf)
            }
            for j := 0; j < e.outBuf.Len(); j++ {
                emit(e.outBuf.Get(j))
            }

            forcedInsideRun := e.lastCCC != 0 && ccc != 0
            e.outBuf.Clear()
            e.cccBuf.Clear()

            if forcedInsideRun && !finished {
                e.outBuf.Push(CGJ)
                e.cccBuf.Push(0)
            }

            if finished {
                continue
            }
        }

        e.lastCCC = ccc
        e.outBuf.Push(d)
        e.cccBuf.Push(ccc)
    }
}

// NormalizeString returns the normalized form of s.
func NormalizeString(form quickcheck.Form, s string) string {
    if s == "" {
        return ""
    }
    e := New(form)
    out := make([]rune, 0, len(s))
    emit := func(r rune) { out = append(out, r) }

    n := len(s)
    for i := 0; i < n; {
        r, size := utf8.DecodeRuneInString(s[i:])
        i += size
        e.Feed(r, i >= n, emit)
    }
    return string(out)
}

// NormalizeBytes returns the normalized form of b.
func NormalizeBytes(form quickcheck.Form, b []byte) []byte {
    if len(b) == 0 {
        return []byte{}
    }
    e := New(form)
    out := make([]byte, 0, len(b))
    emit := func(r rune) {
        var buf [utf8.UTFMax]byte
        out = append(out, buf[:utf8.EncodeRune(buf[:], r)]...)
    }

    n := len(b)
    for i := 0; i < n; {
        r, size := utf8.DecodeRune(b[i:])
        i += size
        e.Feed(r, i >= n, emit)
    }
    return out
}

// NormalizeRunes appends the normalized form of rs to dst and returns the
// result.
func NormalizeRunes(form quickcheck.Form, dst []rune, rs []rune) []rune {
    if len(rs) == 0 {
        return dst
    }
    e := New(form)
    emit := func(r rune) { dst = append(dst, r) }

    n := len(rs)
    for i, r := range rs {
        e.Feed(r, i == n-1, emit)
    }
    return dst
}

// Iter calls yield with each code point of the normalized form of s, in
// order, stopping early if yield returns false. It drives the same
// [Engine.Feed] loop as [NormalizeString], but never materializes the
// whole output: memory stays bounded by the engine's fixed-size buffers,
// plus whatever yield itself retains.
func Iter(form quickcheck.Form, s string) func(yield func(rune) bool) {
    return func(yield func(rune) bool) {
        if s == "" {
            return
        }
        e := New(form)
        stopped := false
        emit := func(r rune) {
            if stopped {
                return
            }
            if !yield(r) {
                stopped = true
            }
        }

        n := len(s)
        for i := 0; i < n; {
            if stopped {
                return
            }
            r, size := utf8.DecodeRuneInString(s[i:])
            i += size
            e.Feed(r, i >= n, emit)
        }
    }
}
