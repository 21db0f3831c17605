package compare_test

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/westwick/unorm/compare"
)

func TestCmpNFD_AccentedWordWithCombiningForm(t *testing.T) {
    a := "Voulez-vous un caf" + string(rune(0x00E9)) + "?"  // precomposed e-acute
    b := "Voulez-vous un cafe" + string(rune(0x0301)) + "?" // e + combining acute accent
    assert.True(t, compare.CmpNFDString(a, b))
}

func TestCmpNFD_LatinVsCyrillicLookalike(t *testing.T) {
    assert.False(t, compare.CmpNFDString(string(rune(0x0041)), string(rune(0x0410))))
}

func TestCmpNFD_DifferentLengths(t *testing.T) {
    assert.False(t, compare.CmpNFDString("a", "aa"))
    assert.False(t, compare.CmpNFDString("", "a"))
}

func TestCmpNFD_BothEmpty(t *testing.T) {
    assert.True(t, compare.CmpNFDString("", ""))
}

func TestCmpNFD_Identical(t *testing.T) {
    assert.True(t, compare.CmpNFDString("hello, world", "hello, world"))
}

func TestCmpNFD_ComposedVsDecomposedSingleStep(t *testing.T) {
    a := string(rune(0x1E0A))
    b := string([]rune{0x0044, 0x0307})
    assert.True(t, compare.CmpNFDString(a, b))
}

func TestCmpNFD_OutOfOrderMarksAreEquivalent(t *testing.T) {
    a := string([]rune{'a', 0x0300, 0x0323})
    b := string([]rune{'a', 0x0323, 0x0300})
    assert.True(t, compare.CmpNFDString(a, b))
}

func TestCmpNFD_LongRunsOfCombiningMarksStillCompare(t *testing.T) {
    a := "d" + strings.Repeat(string(rune(0x0307)), 100)
    b := "d" + strings.Repeat(string(rune(0x0307)), 100)
    assert.True(t, compare.CmpNFDString(a, b))

    c := "d" + strings.Repeat(string(rune(0x0307)), 99)
    assert.False(t, compare.CmpNFDString(a, c))
}
