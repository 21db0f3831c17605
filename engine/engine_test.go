package engine_test

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/westwick/unorm/engine"
    "github.com/westwick/unorm/quickcheck"
)

func TestEmptyInput(t *testing.T) {
    assert.Equal(t, "", engine.NormalizeString(quickcheck.NFD, ""))
    assert.Equal(t, []byte{}, engine.NormalizeBytes(quickcheck.NFD, nil))
    assert.Nil(t, engine.NormalizeRunes(quickcheck.NFD, nil, nil))
}

func TestZeroCodePoint(t *testing.T) {
    got := engine.NormalizeRunes(quickcheck.NFD, nil, []rune{0})
    assert.Equal(t, []rune{0}, got)
}

func TestToNFD_SingleStepDecomposition(t *testing.T) {
    // to_nfd([U+1E0A]) == [U+0044, U+0307]
    got := engine.NormalizeRunes(quickcheck.NFD, nil, []rune{0x1E0A})
    assert.Equal(t, []rune{0x0044, 0x0307}, got)
}

func TestToNFC_ComposesThroughIntermediateMark(t *testing.T) {
    // to_nfc([U+1E0A, U+0323]) == [U+1E0C, U+0307]
    got := engine.NormalizeRunes(quickcheck.NFC, nil, []rune{0x1E0A, 0x0323})
    assert.Equal(t, []rune{0x1E0C, 0x0307}, got)
}

func TestExpansionFactor_NFC_U1D160(t *testing.T) {
    s := string(rune(0x1D160))
    got := engine.NormalizeString(quickcheck.NFC, s)
    assert.Equal(t, 3*len(s), len(got))
}

func TestExpansionFactor_NFC_FB2C(t *testing.T) {
    got := engine.NormalizeRunes(quickcheck.NFC, nil, []rune{0xFB2C})
    assert.Equal(t, 3, len(got))
}

func TestExpansionFactor_NFD_U0390(t *testing.T) {
    s := string(rune(0x0390))
    got := engine.NormalizeString(quickcheck.NFD, s)
    assert.Equal(t, 3*len(s), len(got))
}

func TestExpansionFactor_NFD_1F82(t *testing.T) {
    got := engine.NormalizeRunes(quickcheck.NFD, nil, []rune{0x1F82})
    assert.Equal(t, 4, len(got))
}

func TestExpansionFactor_NFKC_FDFA(t *testing.T) {
    s := string(rune(0xFDFA))
    got := engine.NormalizeString(quickcheck.NFKC, s)
    assert.Equal(t, 11*len(s), len(got))

    gotRunes := engine.NormalizeRunes(quickcheck.NFKC, nil, []rune{0xFDFA})
    assert.Equal(t, 18, len(gotRunes))
}

func TestGraphemeJoinerInsertedOnceForPathologicalRun(t *testing.T) {
    rs := append([]rune{0x0041}, repeatRune(0x0300, 41)...)
    got := engine.NormalizeRunes(quickcheck.NFC, nil, rs)
    assert.Equal(t, 1, countRune(got, 0x034F))
}

func TestGraphemeJoinerAbsentForPlainRepeats(t *testing.T) {
    rs := append([]rune{0x0041}, repeatRune(0x0041, 41)...)
    got := engine.NormalizeRunes(quickcheck.NFC, nil, rs)
    assert.Equal(t, 0, countRune(got, 0x034F))
}

func TestIdempotence(t *testing.T) {
    inputs := []string{
        "hello",
        string([]rune{0x1E0A, 0x0323}),
        string([]rune{0x1D160}),
        strings.Repeat("é", 5),
    }
    for _, form := range []quickcheck.Form{quickcheck.NFC, quickcheck.NFD, quickcheck.NFKC, quickcheck.NFKD} {
        for _, in := range inputs {
            once := engine.NormalizeString(form, in)
            twice := engine.NormalizeString(form, once)
            assert.Equal(t, once, twice, "form %s input %q", form, in)
        }
    }
}

func TestStabilityForUnlistedCodePoint(t *testing.T) {
    for _, form := range []quickcheck.Form{quickcheck.NFC, quickcheck.NFD, quickcheck.NFKC, quickcheck.NFKD} {
        got := engine.NormalizeRunes(form, nil, []rune{'z'})
        assert.Equal(t, []rune{'z'}, got, "form %s", form)
    }
}

func TestIter(t *testing.T) {
    var got []rune
    for r := range engine.Iter(quickcheck.NFD, string(rune(0x1E0A))) {
        got = append(got, r)
    }
    assert.Equal(t, []rune{0x0044, 0x0307}, got)
}

func TestIterEarlyStop(t *testing.T) {
    var got []rune
    for r := range engine.Iter(quickcheck.NFD, strings.Repeat("a", 10)) {
        got = append(got, r)
        if len(got) == 3 {
            break
        }
    }
    assert.Equal(t, []rune{'a', 'a', 'a'}, got)
}

func repeatRune(r rune, n int) []rune {
    out := make([]rune, n)
    for i := range out {
        out[i] = r
    }
    return out
}

func countRune(rs []rune, target rune) int {
    n := 0
    for _, r := range rs {
        if r == target {
            n++
        }
    }
    return n
}
