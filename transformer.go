package unorm

import (
    "fmt"
    "unicode/utf8"

    "golang.org/x/text/transform"

    "github.com/westwick/unorm/engine"
)

// formTransformer adapts an [engine.Engine] to [transform.Transformer].
// Unlike the stateless transformers in the decompose/reorder packages, it
// must carry state across calls: the engine itself buffers across safe
// breaks, and a short destination buffer can leave code points the engine
// has already produced still waiting to be encoded.
type formTransformer struct {
    form    Form
    eng     *engine.Engine
    pending []rune
}

func (f Form) newTransformer() *formTransformer {
    return &formTransformer{form: f, eng: engine.New(f)}
}

func (t *formTransformer) Reset() {
    t.eng.Reset()
    t.pending = t.pending[:0]
}

func (t *formTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    for len(t.pending) > 0 {
        width := utf8.RuneLen(t.pending[0])
        if len(dst)-nDst < width {
            return nDst, nSrc, transform.ErrShortDst
        }
        nDst += utf8.EncodeRune(dst[nDst:], t.pending[0])
        t.pending = t.pending[1:]
    }

    for {
        r, size := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError && size <= 1 {
            if size == 0 {
                if atEOF {
                    return nDst, nSrc, nil
                }
                return nDst, nSrc, transform.ErrShortSrc
            }
            if atEOF {
                // Deliberately an error rather than the U+FFFD
                // substitution NormalizeString/Bytes/Runes perform: a
                // transform.Transformer is commonly chained with others
                // or driven straight from an io.Reader, where silently
                // rewriting malformed input is more surprising than
                // failing loudly. Matches the decompose/reorder
                // transformers' own behavior on malformed input.
                return nDst, nSrc, fmt.Errorf("unorm: invalid utf8 sequence")
            }
            return nDst, nSrc, transform.ErrShortSrc
        }

        isLast := atEOF && nSrc+size >= len(src)

        var emitted []rune
        t.eng.Feed(r, isLast, func(c rune) { emitted = append(emitted, c) })
        nSrc += size

        for i, c := range emitted {
            width := utf8.RuneLen(c)
            if len(dst)-nDst < width {
                t.pending = append(t.pending, emitted[i:]...)
                return nDst, nSrc, transform.ErrShortDst
            }
            nDst += utf8.EncodeRune(dst[nDst:], c)
        }
    }
}
