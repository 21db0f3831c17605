// Package quickcheck implements the Unicode normalization form tag and the
// quick-check predicate `isNF` (UAX #15 §8): a fast, sound-but-incomplete
// single pass that answers "is this already in normalization form X?"
// without materializing the normalized form.
package quickcheck

import (
    "unicode/utf8"

    "github.com/westwick/unorm/decompose"
    "github.com/westwick/unorm/must"
    "github.com/westwick/unorm/operator"
    "github.com/westwick/unorm/ucd"
)

// Form identifies one of the four Unicode normalization forms.
type Form uint8

const (
    NFC Form = iota
    NFD
    NFKC
    NFKD
)

func (f Form) String() string {
    switch f {
    case NFC:
        return "NFC"
    case NFD:
        return "NFD"
    case NFKC:
        return "NFKC"
    case NFKD:
        return "NFKD"
    }
    must.Never()
    return ""
}

// Composes reports whether f recomposes decomposed code points (true for
// NFC/NFKC, false for NFD/NFKD).
func (f Form) Composes() bool {
    return f == NFC || f == NFKC
}

// DecompositionKind reports which decomposition mapping f follows.
func (f Form) DecompositionKind() decompose.Kind {
    if f == NFC || f == NFD {
        return decompose.Canonical
    }
    return decompose.Compatibility
}

// Status is the result of a quick-check scan.
type Status int

const (
    Yes Status = iota
    Maybe
    No
)

// qcMasks holds the "No" and "Maybe" quick-check bits a form tests for.
// maybe is 0 for NFD/NFKD, which UAX #15 never allows Maybe for.
type qcMasks struct {
    no, maybe ucd.QCFlag
}

// formMasks is indexed directly by Form, since NFC/NFD/NFKC/NFKD are
// declared as 0..3 in that order.
var formMasks = [...]qcMasks{
    NFC:  {ucd.NFCQCNo, ucd.NFCQCMaybe},
    NFD:  {ucd.NFDQCNo, 0},
    NFKC: {ucd.NFKCQCNo, ucd.NFKCQCMaybe},
    NFKD: {ucd.NFKDQCNo, 0},
}

// IsAllowed implements the form-selection table (UAX #15 §8, table 1):
// the first matching (mask, status) pair for f, or Yes if none match.
func IsAllowed(q ucd.QCFlag, f Form) Status {
    if !operator.In(f, NFC, NFD, NFKC, NFKD) {
        must.Never()
    }

    m := formMasks[f]
    if q&m.no != 0 {
        return No
    }
    if m.maybe != 0 && q&m.maybe != 0 {
        return Maybe
    }
    return Yes
}

// isSupplementaryPrivateUse reports whether c falls in one of the two
// supplementary private-use planes, [0xF0000, 0xFFFFF] or
// [0x100000, 0x10FFFD].
//
// IsNF skips the code point immediately following one of these. There is
// no justification for this in UAX #15 itself; it is carried over
// unchanged from the reference implementation this module's behavior was
// checked against, since removing it cannot be verified safe without
// running it against the full conformance corpus, which is not available
// in this environment. It is believed to be a leftover of a UTF-16
// surrogate-pair-oriented implementation that does not apply to a
// code-point-oriented one, but is kept out of caution.
func isSupplementaryPrivateUse(c rune) bool {
    return (c >= 0xF0000 && c <= 0xFFFFF) || (c >= 0x100000 && c <= 0x10FFFD)
}

// isNF drives the single left-to-right pass described by UAX #15 §8 over
// a sequence of code points supplied by next (which returns ok=false once
// exhausted).
func isNF(form Form, next func() (rune, bool)) Status {
    var lastCanonicalClass uint8
    status := Yes
    skipOne := false

    for {
        c, ok := next()
        if !ok {
            break
        }

        if skipOne {
            skipOne = false
            continue
        }
        if isSupplementaryPrivateUse(c) {
            skipOne = true
        }

        ccc := ucd.Combining(c)
        if lastCanonicalClass > ccc && ccc != 0 {
            return No
        }

        switch IsAllowed(ucd.QuickCheck(c), form) {
        case No:
            return No
        case Maybe:
            status = Maybe
        }

        lastCanonicalClass = ccc
    }

    return status
}

// IsNFString returns the quick-check status of s under form.
func IsNFString(s string, form Form) Status {
    i := 0
    return isNF(form, func() (rune, bool) {
        if i >= len(s) {
            return 0, false
        }
        r, size := utf8.DecodeRuneInString(s[i:])
        i += size
        return r, true
    })
}

// IsNFBytes returns the quick-check status of b under form.
func IsNFBytes(b []byte, form Form) Status {
    i := 0
    return isNF(form, func() (rune, bool) {
        if i >= len(b) {
            return 0, false
        }
        r, size := utf8.DecodeRune(b[i:])
        i += size
        return r, true
    })
}

// IsNFRunes returns the quick-check status of rs under form.
func IsNFRunes(rs []rune, form Form) Status {
    i := 0
    return isNF(form, func() (rune, bool) {
        if i >= len(rs) {
            return 0, false
        }
        r := rs[i]
        i++
        return r, true
    })
}
