// Package fold implements operations that map similar characters to a
// common target. These operations are called character foldings, and can
// be used to ignore certain distinctions between similar characters.
//
// DISCLAIMER: these folders are based on suggested foldings that appear in
// withdrawn drafts of Unicode technical reports. They may not be complete.
// Their names come from those technical reports.
//
// WARNING: folding is NOT normalization and is NOT appropriate for secure
// contexts such as identifier comparison.
//
// See, for important commentary:
//   - Unicode Technical Report 30: CHARACTER FOLDINGS (withdrawn, draft)
//   - Unicode Technical Report 25: CHARACTER FOLDINGS (draft)
package fold

import (
    "unicode"

    "golang.org/x/text/runes"
    "golang.org/x/text/transform"

    "github.com/westwick/unorm/decompose"
)

func canonicalFold(filter func(rune) bool) transform.Transformer {
    return decompose.TransformerWithFilter(decompose.Canonical, filter)
}

// Accents is a transformer that removes accents from Latin/Greek/Cyrillic
// characters, by canonically decomposing them and dropping the resulting
// combining marks.
var Accents = transform.Chain(
    canonicalFold(func(r rune) bool {
        return unicode.In(r, unicode.Latin, unicode.Greek, unicode.Cyrillic)
    }),
    runes.Remove(runes.Predicate(func(r rune) bool {
        return unicode.Is(unicode.Mn, r)
    })),
)

// CanonicalDuplicates is a transformer that folds duplicate singletons
// (usually when the same character, for historical reasons, has two
// different code points), e.g. OHM SIGN => GREEK CAPITAL LETTER OMEGA.
var CanonicalDuplicates = canonicalFold(func(r rune) bool {
    switch r {
    case 0x0374, 0x037E, 0x0387, 0x1FBE,
        0x1FEF, 0x1FFD, 0x2000, 0x2001,
        0x2126, 0x212A, 0x212B:
        return true
    }
    return r >= 0x2329 && r <= 0x232A
})

// Dashes is a transformer that folds everything in Unicode class Pd ("dash
// punctuation") to hyphen-minus '-'.
var Dashes = runes.Map(func(r rune) rune {
    if unicode.Is(unicode.Pd, r) {
        return 0x002D // hyphen-minus
    }
    return r
})

// Space is a transformer that folds every Unicode space separator (class
// Zs) to U+0020 SPACE.
var Space = runes.Map(func(r rune) rune {
    if unicode.Is(unicode.Zs, r) {
        return 0x0020
    }
    return r
})

// GreekLetterforms, HebrewAlternates, Jamo, Math, NoBreak, Positional, and
// Small foldings are not implemented here: each of those requires
// discriminating which of the eighteen Unicode compatibility-formatting
// tags (Font, NoBreak, Super, Circle, and so on) produced a given
// compatibility decomposition, and golang.org/x/text/unicode/norm exposes
// only whether a compatibility mapping exists, never which tag it carries.
// Producing those foldings would require parsing raw UnicodeData.txt,
// which this module does not carry.
