// Package decompose computes the full, transitive Unicode decomposition of
// a single code point: the step that turns a precomposed character like
// U+1E0A (Ḋ) into its base letter plus combining marks, walking through any
// number of intermediate mappings along the way.
//
// See [Unicode Normalization Forms] and [Character Decomposition Mappings].
//
// [Unicode Normalization Forms]: https://unicode.org/reports/tr15/
// [Character Decomposition Mappings]: https://www.unicode.org/reports/tr44/#Character_Decomposition_Mappings
package decompose

import (
    "fmt"
    "unicode/utf8"

    "golang.org/x/text/transform"

    "github.com/westwick/unorm/buffer"
    "github.com/westwick/unorm/hangul"
    "github.com/westwick/unorm/ucd"
)

// Kind selects which decomposition mapping to follow.
type Kind int

const (
    // Canonical follows only canonical decomposition mappings (NFD/NFC).
    Canonical Kind = iota
    // Compatibility follows compatibility decomposition mappings too (NFKD/NFKC).
    Compatibility
)

func (k Kind) mappingOf(r rune) []rune {
    if hangul.IsSyllable(r) {
        return hangul.Decompose(nil, r)
    }
    if k == Canonical {
        return ucd.CanonicalDecomposition(r)
    }
    return ucd.Decomposition(r)
}

// Decompose clears dst and appends the full decomposition of r under kind.
// If r has no decomposition, dst ends up holding just r.
//
// dst and the internal work stack are both bounded buffers, not growable
// slices. The call is not allocation-free: each mapping lookup through
// the ucd and hangul packages returns a newly allocated slice.
func Decompose(dst *buffer.Buffer[rune], r rune, kind Kind) {
    dst.Clear()

    var stack buffer.Buffer[rune]
    stack.Push(r)

    for stack.Len() > 0 {
        x := stack.Pop()
        m := kind.mappingOf(x)
        if len(m) == 0 {
            dst.Push(x)
            continue
        }
        for _, y := range m {
            stack.Push(y)
        }
    }

    // Leaves were appended in the order the stack happened to pop them,
    // which is the reverse of left-to-right; restore it.
    dst.Reverse()
}

// Transformer returns a [transform.Transformer] that applies kind's
// decomposition across its input, without reordering combining marks
// (pair with a reorder pass for a full normal form).
//
// The returned transformer is stateless, so may be used concurrently.
func Transformer(kind Kind) transform.Transformer {
    return mappingTransformer{kind, nil}
}

// TransformerWithFilter is like [Transformer], except that for each input
// rune x where filter(x) returns false, decomposition is skipped and x is
// copied to the output unchanged. This is the building block folding
// operations use to restrict decomposition to a particular script or set
// of code points (see [github.com/westwick/unorm/fold]).
func TransformerWithFilter(kind Kind, filter func(x rune) bool) transform.Transformer {
    return mappingTransformer{kind, filter}
}

type mappingTransformer struct {
    kind   Kind
    filter func(x rune) bool
}

func (m mappingTransformer) Reset() {}

func (m mappingTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    var scratch buffer.Buffer[rune]

    for {
        r, rZ := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError && rZ <= 1 {
            if rZ == 0 && atEOF {
                return nDst, nSrc, nil
            }
            if atEOF {
                return nDst, nSrc, fmt.Errorf("decompose: invalid utf8 sequence")
            }
            return nDst, nSrc, transform.ErrShortSrc
        }

        if m.filter != nil && !m.filter(r) {
            if cap(dst)-nDst < rZ {
                return nDst, nSrc, transform.ErrShortDst
            }
            nDst += utf8.EncodeRune(dst[nDst:], r)
            nSrc += rZ
            continue
        }

        Decompose(&scratch, r, m.kind)

        width := 0
        for i := 0; i < scratch.Len(); i++ {
            width += utf8.RuneLen(scratch.Get(i))
        }
        if cap(dst)-nDst < width {
            return nDst, nSrc, transform.ErrShortDst
        }

        for i := 0; i < scratch.Len(); i++ {
            nDst += utf8.EncodeRune(dst[nDst:], scratch.Get(i))
        }
        nSrc += rZ
    }
}
