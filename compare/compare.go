// Package compare implements canonical-equivalence comparison of two byte
// strings without materializing either one's normal form: `cmp_nfd`.
//
// It drives two independent NFD "windows" over the two inputs in lockstep,
// each advancing to its next safe break (or buffer-pressure boundary)
// before the two accumulated, canonically-sorted buffers are compared
// structurally, so neither NFD form is materialized. It is not
// allocation-free: [CmpNFD] and [CmpNFDString] first convert each input
// to a []rune, and each per-code-point decomposition lookup returns a
// newly allocated slice.
package compare

import (
    "github.com/westwick/unorm/buffer"
    "github.com/westwick/unorm/decompose"
    "github.com/westwick/unorm/quickcheck"
    "github.com/westwick/unorm/reorder"
    "github.com/westwick/unorm/ucd"
)

// window incrementally decomposes one side's input, one code point at a
// time, keeping the leftover decomposition of the current input code
// point so that a window boundary can fall in the middle of one.
type window struct {
    runes  []rune
    pos    int
    dcp    buffer.Buffer[rune]
    dcpIdx int
}

func newWindow(s []rune) *window {
    return &window{runes: s}
}

// next returns the next not-yet-consumed decomposed code point and its
// combining class, without consuming it; ok is false once the input is
// exhausted.
func (w *window) next() (d rune, ccc uint8, ok bool) {
    for w.dcpIdx >= w.dcp.Len() {
        if w.pos >= len(w.runes) {
            return 0, 0, false
        }
        decompose.Decompose(&w.dcp, w.runes[w.pos], decompose.Canonical)
        w.pos++
        w.dcpIdx = 0
    }
    d = w.dcp.Get(w.dcpIdx)
    return d, ucd.Combining(d), true
}

func (w *window) consume() { w.dcpIdx++ }

// fill advances the window through its input until it reaches a safe
// break or the buffer would overflow, writing the canonically-sorted
// result into out/ccc. It reports whether it produced a non-empty
// window (false means the input was already exhausted).
func (w *window) fill(out *buffer.Buffer[rune], ccc *buffer.Buffer[uint8]) bool {
    out.Clear()
    ccc.Clear()

    for {
        d, c, ok := w.next()
        if !ok {
            break
        }

        safeBreak := quickcheck.IsAllowed(ucd.QuickCheck(d), quickcheck.NFD) == quickcheck.Yes && c == 0
        if out.Len() > 0 && (safeBreak || out.Full()) {
            break
        }

        out.Push(d)
        ccc.Push(c)
        w.consume()
    }

    reorder.Sort(out, ccc)
    return out.Len() > 0
}

// CmpNFDRunes reports whether a and b are canonically equivalent, i.e.
// NFD(a) == NFD(b), without materializing either normal form.
func CmpNFDRunes(a, b []rune) bool {
    wa, wb := newWindow(a), newWindow(b)
    var outA, outB buffer.Buffer[rune]
    var cccA, cccB buffer.Buffer[uint8]

    for {
        hasA := wa.fill(&outA, &cccA)
        hasB := wb.fill(&outB, &cccB)

        if !hasA && !hasB {
            return true
        }
        if hasA != hasB {
            return false
        }
        if !buffer.Equal(&outA, &outB) {
            return false
        }
    }
}

// CmpNFD reports whether a and b are canonically equivalent UTF-8 byte
// strings.
func CmpNFD(a, b []byte) bool {
    return CmpNFDRunes([]rune(string(a)), []rune(string(b)))
}

// CmpNFDString reports whether a and b are canonically equivalent strings.
func CmpNFDString(a, b string) bool {
    return CmpNFDRunes([]rune(a), []rune(b))
}
