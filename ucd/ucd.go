// Package ucd is the property-lookup collaborator the normalization engine
// consumes: for a single code point, its canonical combining class, its
// canonical and compatibility decomposition mappings, and its quick-check
// flags; for a pair of code points, their primary composite, if any. The
// engine in [github.com/westwick/unorm] treats the actual Unicode Character
// Database as somebody else's problem and only talks to this interface.
//
// Rather than shipping and maintaining our own copy of the UCD (the kind of
// large generated table a from-scratch implementation would build from a
// UCD XML snapshot), this package is a thin adapter over
// golang.org/x/text/unicode/norm, which already ships accurate per-rune
// combining class and decomposition tables. It then derives the primary
// composition table and the quick-check flags itself, since norm does not
// export either: composition is recovered by reversing the decomposition
// tables and confirming each candidate pair against norm.NFC (which does
// know how to compose, it just won't tell you the table), and quick-check
// flags are derived from the definitions in UAX #15 applied to that data.
// See the package doc on [QuickCheck] for the known limits of that
// derivation.
package ucd

import (
    "sync"
    "unicode/utf8"

    "golang.org/x/text/unicode/norm"

    "github.com/westwick/unorm/hangul"
)

// QCFlag is a bitmask of quick-check properties for a single code point:
// bits for NFD/NFKD "No", and bits for NFC/NFKC "No" and "Maybe".
type QCFlag uint8

const (
    NFDQCNo QCFlag = 1 << iota
    NFKDQCNo
    NFCQCNo
    NFCQCMaybe
    NFKCQCNo
    NFKCQCMaybe
)

// Properties is the packed per-rune record the engine asks for.
type Properties struct {
    Combining  uint8
    QuickCheck QCFlag
}

// Of returns the combining class and quick-check flags for r.
func Of(r rune) Properties {
    return Properties{
        Combining:  Combining(r),
        QuickCheck: QuickCheck(r),
    }
}

// Combining returns the Canonical_Combining_Class of r. Zero means r is a
// starter.
func Combining(r rune) uint8 {
    if hangul.IsSyllable(r) {
        return 0
    }
    return norm.NFD.PropertiesString(string(r)).CCC()
}

// CanonicalDecomposition returns the canonical decomposition mapping of r,
// or nil if r has none (Hangul syllables are excluded here; callers are
// expected to check hangul.IsSyllable themselves, per the decomposer's
// design). The underlying table already resolves transitive mappings, so
// in practice this is the full decomposition in one step; the decomposer
// still walks it through its own work-stack so that it does not depend on
// that property of this particular collaborator.
func CanonicalDecomposition(r rune) []rune {
    ensureTables()
    return cloneRunes(decompCanon[r])
}

// Decomposition returns the compatibility decomposition mapping of r, or
// nil if r has none. As with [CanonicalDecomposition], Hangul syllables
// are excluded, and the mapping is already transitively resolved.
func Decomposition(r rune) []rune {
    ensureTables()
    return cloneRunes(decompCompat[r])
}

// Composition returns the primary composite of the pair (a, b), and true,
// if one exists in the canonical composition table. Hangul is excluded:
// callers should try [github.com/westwick/unorm/hangul.Compose] first.
func Composition(a, b rune) (rune, bool) {
    ensureTables()
    c, ok := compose[pair{a, b}]
    return c, ok
}

// QuickCheck returns the packed quick-check flags for r.
//
// Limitation: Unicode's official NFC_QC/NFKC_QC properties are derived by a
// closure computation over the full decomposition and composition graph;
// a handful of characters are assigned "No" or "Maybe" because of how they
// interact with the decomposition of some *other* character, not because
// of any property of their own. This derivation only looks at r's own
// decomposition and composability, so it can be too optimistic for that
// small set. It never reports "Yes" for a character with its own
// decomposition or its own composability, so normal use (deciding whether
// a buffer is already normalized) remains sound: a false "Maybe" costs
// performance, never correctness.
func QuickCheck(r rune) QCFlag {
    ensureTables()

    var q QCFlag

    hasCanon := len(decompCanon[r]) > 0 || hangul.IsSyllable(r)
    hasCompat := len(decompCompat[r]) > 0 || hangul.IsSyllable(r)
    sameMapping := runesEqual(decompCanon[r], decompCompat[r])

    if hasCanon {
        q |= NFDQCNo
    }
    if hasCompat {
        q |= NFKDQCNo
    }

    excludedStarter := hasCanon && !hangul.IsSyllable(r) && !recomposes[r]
    combinesBack := combinesBackward[r] || hangul.IsVowelJamo(r) || hangul.IsTrailingJamo(r)

    if excludedStarter {
        q |= NFCQCNo
    } else if combinesBack {
        q |= NFCQCMaybe
    }

    if !sameMapping {
        q |= NFKCQCNo
    } else if excludedStarter {
        q |= NFKCQCNo
    } else if combinesBack {
        q |= NFKCQCMaybe
    }

    return q
}

type pair struct {
    a, b rune
}

var (
    tablesOnce       sync.Once
    decompCanon      map[rune][]rune
    decompCompat     map[rune][]rune
    compose          map[pair]rune
    combinesBackward map[rune]bool
    recomposes       map[rune]bool
)

// ensureTables lazily builds the derived composition and quick-check
// tables on first use, so that callers who only ever need [Combining]
// never pay for it.
func ensureTables() {
    tablesOnce.Do(buildTables)
}

func buildTables() {
    decompCanon = make(map[rune][]rune, 4096)
    decompCompat = make(map[rune][]rune, 4096)
    compose = make(map[pair]rune, 4096)
    combinesBackward = make(map[rune]bool, 1024)
    recomposes = make(map[rune]bool, 4096)

    flattened := make(map[string]rune, 8192)

    for r := rune(0); r <= utf8.MaxRune; r++ {
        if r >= 0xD800 && r <= 0xDFFF {
            continue // surrogate halves are not code points
        }
        if hangul.IsSyllable(r) {
            continue // handled algorithmically, not by table
        }

        s := string(r)
        if canon := norm.NFD.PropertiesString(s).Decomposition(); len(canon) > 0 {
            rs := []rune(string(canon))
            decompCanon[r] = rs
            flattened[string(rs)] = r
        }
        if compat := norm.NFKD.PropertiesString(s).Decomposition(); len(compat) > 0 {
            decompCompat[r] = []rune(string(compat))
        }
    }

    for r, seq := range decompCanon {
        if len(seq) < 2 {
            continue // a singleton mapping is never a composable pair
        }

        b := seq[len(seq)-1]
        prefix := seq[:len(seq)-1]

        var a rune
        if len(prefix) == 1 {
            a = prefix[0]
        } else if src, ok := flattened[string(prefix)]; ok {
            a = src
        } else {
            continue // cannot recover the single-step pair for r
        }

        if composed, ok := tryCompose(a, b); ok && composed == r {
            compose[pair{a, b}] = r
            combinesBackward[b] = true
            recomposes[r] = true
        }
    }
}

// tryCompose asks norm.NFC, the reference composing implementation, what
// it makes of the two-rune sequence (a, b). If NFC reduces it to the
// single rune c, (a, b) is a valid, non-excluded composable pair.
func tryCompose(a, b rune) (rune, bool) {
    out := norm.NFC.String(string([]rune{a, b}))
    r, size := utf8.DecodeRuneInString(out)
    if size != len(out) {
        return 0, false // more than one rune left: did not compose
    }
    return r, true
}

func cloneRunes(rs []rune) []rune {
    if len(rs) == 0 {
        return nil
    }
    out := make([]rune, len(rs))
    copy(out, rs)
    return out
}

func runesEqual(a, b []rune) bool {
    if len(a) != len(b) {
        return false
    }
    for i := range a {
        if a[i] != b[i] {
            return false
        }
    }
    return true
}
