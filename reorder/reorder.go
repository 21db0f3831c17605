// Package reorder implements the Canonical Ordering Algorithm (UAX #15
// §1.2): stably sorting runs of adjacent combining marks into
// Canonical_Combining_Class order, the step that turns, for example,
// "d" + COMBINING DOT ABOVE + COMBINING DOT BELOW into the same order
// regardless of which order a document happened to type the two marks in.
//
// Starters (CCC=0) are never moved, and never moved past: only a maximal
// run of non-starters is ever reordered, by repeated adjacent swaps, which
// preserves the stable order of marks that already share a CCC (D108).
package reorder

import (
    "errors"
    "unicode/utf8"

    "golang.org/x/text/transform"

    "github.com/westwick/unorm/buffer"
    "github.com/westwick/unorm/ucd"
)

// ErrMaxNonStarters is returned by [Reorder] and [ReorderRunes] when the
// input contains a run of more than [buffer.N] consecutive non-starters,
// which this package refuses to buffer in one pass. The streaming engine
// in [github.com/westwick/unorm/engine] does not hit this: it flushes
// before its buffer fills, inserting a stability guard instead of failing.
var ErrMaxNonStarters = errors.New("reorder: too many consecutive non-starting code points")

// Reorder canonically reorders the combining marks of a well-formed UTF-8
// byte slice in place. It returns [ErrMaxNonStarters] if any run of
// non-starters exceeds [buffer.N] code points.
func Reorder(b []byte) error {
    rs := []rune(string(b))
    if err := ReorderRunes(rs); err != nil {
        return err
    }
    copy(b, []byte(string(rs)))
    return nil
}

// ReorderRunes canonically reorders the combining marks of rs in place. It
// returns [ErrMaxNonStarters] if any run of non-starters exceeds [buffer.N]
// code points.
func ReorderRunes(rs []rune) error {
    var run buffer.Buffer[rune]
    var cccs buffer.Buffer[uint8]
    runStart := 0

    flush := func() {
        if run.Len() == 0 {
            return
        }
        Sort(&run, &cccs)
        for i := 0; i < run.Len(); i++ {
            rs[runStart+i] = run.Get(i)
        }
        run.Clear()
        cccs.Clear()
    }

    for i, r := range rs {
        c := ucd.Combining(r)
        if c == 0 {
            flush()
            runStart = i + 1
            continue
        }
        if run.Full() {
            return ErrMaxNonStarters
        }
        run.Push(r)
        cccs.Push(c)
    }
    flush()
    return nil
}

// Sort performs the in-place bubble-sort-with-early-exit canonical reorder
// described by UAX #15 over buf, which may hold starters as well as
// non-starters: only adjacent non-starters are swapped, so starters stay
// in place. It swaps the parallel ccc buffer in lockstep so that
// ccc.Get(i) == ucd.Combining(buf.Get(i)) continues to hold after sorting.
func Sort(buf *buffer.Buffer[rune], ccc *buffer.Buffer[uint8]) {
    n := buf.Len()
    for {
        swapped := false
        for i := 0; i+1 < n; i++ {
            a, b := ccc.Get(i), ccc.Get(i+1)
            if a > b && b > 0 {
                buf.Swap(i, i+1)
                ccc.Swap(i, i+1)
                swapped = true
            }
        }
        if !swapped {
            break
        }
    }
}

// Transformer is a [transform.Transformer] that canonically reorders
// combining marks across its input, without decomposing or composing. It
// returns [ErrMaxNonStarters] if fed a run of more than [buffer.N]
// consecutive non-starters.
//
// Transformer is stateless, so may be used concurrently.
var Transformer transform.Transformer = reorderTransformer{}

type reorderTransformer struct{}

func (reorderTransformer) Reset() {}

func (reorderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    var run buffer.Buffer[rune]
    var cccs buffer.Buffer[uint8]
    runStart := 0 // offset in src of the first rune of run

    emit := func() error {
        if run.Len() == 0 {
            return nil
        }
        Sort(&run, &cccs)
        width := 0
        for i := 0; i < run.Len(); i++ {
            width += utf8.RuneLen(run.Get(i))
        }
        if cap(dst)-nDst < width {
            nSrc = runStart // leave the run unconsumed for the next call
            return transform.ErrShortDst
        }
        for i := 0; i < run.Len(); i++ {
            nDst += utf8.EncodeRune(dst[nDst:], run.Get(i))
        }
        run.Clear()
        cccs.Clear()
        return nil
    }

    for {
        r, rZ := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError && rZ <= 1 {
            if rZ == 0 && atEOF {
                if e := emit(); e != nil {
                    return nDst, nSrc, e
                }
                return nDst, nSrc, nil
            }
            if atEOF {
                return nDst, nSrc, errors.New("reorder: invalid utf8 sequence")
            }
            if run.Len() > 0 {
                nSrc = runStart // the run may continue in the next chunk
            }
            return nDst, nSrc, transform.ErrShortSrc
        }

        c := ucd.Combining(r)
        if c == 0 {
            if e := emit(); e != nil {
                return nDst, nSrc, e
            }
            if cap(dst)-nDst < utf8.RuneLen(r) {
                return nDst, nSrc, transform.ErrShortDst
            }
            nDst += utf8.EncodeRune(dst[nDst:], r)
            nSrc += rZ
            continue
        }

        if run.Full() {
            return nDst, nSrc, ErrMaxNonStarters
        }
        if run.Len() == 0 {
            runStart = nSrc
        }
        run.Push(r)
        cccs.Push(c)
        nSrc += rZ
    }
}
