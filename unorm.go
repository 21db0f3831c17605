// Package unorm implements streaming, constant-space Unicode
// normalization: the four normalization forms defined by Unicode Standard
// Annex #15 (NFC, NFD, NFKC, NFKD), plus canonical-equivalence comparison.
//
// Unlike golang.org/x/text/unicode/norm, whose [Form] type this package's
// API deliberately mirrors, every operation here is built on a small set
// of fixed-size internal buffers (see [github.com/westwick/unorm/buffer]):
// normalizing a gigabyte string and normalizing ten bytes use the same
// bounded working memory, at the cost of needing to insert an occasional
// stability-guard code point (U+034F, the Combining Grapheme Joiner) when
// fed pathological input containing an unbounded run of combining marks.
package unorm

import (
    "golang.org/x/text/transform"

    "github.com/westwick/unorm/compare"
    "github.com/westwick/unorm/engine"
    "github.com/westwick/unorm/quickcheck"
)

// Form identifies a Unicode normalization form.
type Form = quickcheck.Form

const (
    NFC  = quickcheck.NFC
    NFD  = quickcheck.NFD
    NFKC = quickcheck.NFKC
    NFKD = quickcheck.NFKD
)

// String returns the normal form of s.
func (f Form) String(s string) string {
    return engine.NormalizeString(f, s)
}

// Bytes returns the normal form of b.
func (f Form) Bytes(b []byte) []byte {
    return engine.NormalizeBytes(f, b)
}

// AppendRunes appends the normal form of runes to dst and returns the
// extended slice.
func (f Form) AppendRunes(dst []rune, runes []rune) []rune {
    return engine.NormalizeRunes(f, dst, runes)
}

// Iter returns a range-over-func iterator yielding the code points of the
// normal form of s, one at a time, without materializing the whole
// result.
func (f Form) Iter(s string) func(yield func(rune) bool) {
    return engine.Iter(f, s)
}

// IsNormalString reports whether s is already in normal form f. A true
// result guarantees s == f.String(s); a false result does not guarantee
// the opposite, since the underlying quick-check is sound but not
// complete (see [github.com/westwick/unorm/quickcheck]).
func (f Form) IsNormalString(s string) bool {
    return quickcheck.IsNFString(s, f) == quickcheck.Yes
}

// IsNormal reports whether b is already in normal form f, with the same
// soundness caveat as [Form.IsNormalString].
func (f Form) IsNormal(b []byte) bool {
    return quickcheck.IsNFBytes(b, f) == quickcheck.Yes
}

// IsNormalRunes reports whether rs is already in normal form f, with the
// same soundness caveat as [Form.IsNormalString].
func (f Form) IsNormalRunes(rs []rune) bool {
    return quickcheck.IsNFRunes(rs, f) == quickcheck.Yes
}

// Transformer returns a [transform.Transformer] that normalizes its input
// to form f, for callers already working with [golang.org/x/text/transform]
// or the standard io.Reader/io.Writer pipelines it adapts.
//
// Unlike the stateless transformers in the decompose/reorder packages,
// the returned transformer carries state across Transform calls (its
// engine and any output still pending a short destination buffer), so it
// must not be shared across concurrent goroutines; call Transformer()
// again for each concurrent use, or Reset() between unrelated streams.
func (f Form) Transformer() transform.Transformer {
    return f.newTransformer()
}

// CmpNFD reports whether a and b are canonically equivalent UTF-8 byte
// strings, i.e. NFD(a) == NFD(b), without materializing either normal
// form.
func CmpNFD(a, b []byte) bool {
    return compare.CmpNFD(a, b)
}

// CmpNFDString reports whether a and b are canonically equivalent
// strings.
func CmpNFDString(a, b string) bool {
    return compare.CmpNFDString(a, b)
}
