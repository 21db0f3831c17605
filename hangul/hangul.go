// Package hangul implements the algorithmic decomposition and composition
// of the Hangul Syllables block (U+AC00 ... U+D7A3), as defined by the
// Unicode Standard's Hangul Syllable Decomposition algorithm. Unlike every
// other Unicode decomposition or composition, these mappings are computed
// arithmetically rather than looked up in a table, because the block
// contains over eleven thousand syllables built from a small number of
// Jamo parts.
package hangul

// Constants from the Unicode Standard's Hangul syllable algorithm.
const (
    SBase  = 0xAC00
    LBase  = 0x1100
    VBase  = 0x1161
    TBase  = 0x11A7
    LCount = 19
    VCount = 21
    TCount = 28
    NCount = VCount * TCount // 588
    SCount = LCount * NCount // 11172
)

// IsSyllable returns true if r is a precomposed Hangul syllable, i.e. falls
// within U+AC00 ..= U+D7A3.
func IsSyllable(r rune) bool {
    return (r >= SBase) && (r < SBase+SCount)
}

// IsLeadingJamo returns true if r is a leading consonant (choseong) Jamo,
// U+1100 ..= U+1112.
func IsLeadingJamo(r rune) bool {
    return (r >= LBase) && (r < LBase+LCount)
}

// IsVowelJamo returns true if r is a vowel (jungseong) Jamo, U+1161 ..=
// U+1175. A vowel Jamo always combines backward with a preceding leading
// Jamo.
func IsVowelJamo(r rune) bool {
    return (r >= VBase) && (r < VBase+VCount)
}

// IsTrailingJamo returns true if r is a trailing consonant (jongseong)
// Jamo, U+11A8 ..= U+11C2. A trailing Jamo always combines backward with a
// preceding LV syllable.
func IsTrailingJamo(r rune) bool {
    return (r > TBase) && (r < TBase+TCount)
}

// Decompose appends the full canonical decomposition of the Hangul
// syllable r to dst and returns the result. If r is not a Hangul
// syllable, dst is returned unchanged.
//
// A syllable always decomposes to a leading Jamo and a vowel Jamo, and to
// a trailing Jamo too unless the syllable has no final consonant (an "LV"
// syllable, as opposed to an "LVT" syllable).
func Decompose(dst []rune, r rune) []rune {
    if !IsSyllable(r) {
        return dst
    }

    si := r - SBase
    l := LBase + si/NCount
    v := VBase + (si%NCount)/TCount
    t := TBase + si%TCount

    dst = append(dst, l, v)
    if t != TBase {
        dst = append(dst, t)
    }
    return dst
}

// Compose returns the Hangul syllable formed by combining a and b, and
// true, if such a combination exists. Two cases produce a composite:
//
//   - a leading Jamo followed by a vowel Jamo, forming an LV syllable;
//   - an LV syllable (a syllable with no trailing consonant) followed by
//     a trailing Jamo, forming an LVT syllable.
//
// Otherwise it returns (0, false).
func Compose(a, b rune) (rune, bool) {
    if IsLeadingJamo(a) && IsVowelJamo(b) {
        lIndex := a - LBase
        vIndex := b - VBase
        return SBase + (lIndex*VCount+vIndex)*TCount, true
    }

    if IsSyllable(a) && ((a-SBase)%TCount == 0) && IsTrailingJamo(b) {
        return a + (b - TBase), true
    }

    return 0, false
}
