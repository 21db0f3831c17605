package reorder_test

import (
    "bytes"
    "io"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "golang.org/x/text/transform"

    "github.com/westwick/unorm/internal/quicktest"
    "github.com/westwick/unorm/reorder"
)

func TestReorderRunes(t *testing.T) {
    type row struct {
        input  []rune
        output []rune
    }

    rows := []row{
        {
            []rune{0x0064, 0x0307, 0x0323},
            []rune{0x0064, 0x0323, 0x0307},
        },
        {
            []rune{0x0064, 0x0064, 0x0064, 0x0307, 0x0307, 0x0307, 0x0307, 0x0323, 0x0064},
            []rune{0x0064, 0x0064, 0x0064, 0x0323, 0x0307, 0x0307, 0x0307, 0x0307, 0x0064},
        },
        {
            []rune{0x0064, 0x0064, 0x0064, 0x0307, 0x0307, 0x0307, 0x0307, 0x0323},
            []rune{0x0064, 0x0064, 0x0064, 0x0323, 0x0307, 0x0307, 0x0307, 0x0307},
        },
    }

    for i, r := range rows {
        input := make([]rune, len(r.input))
        copy(input, r.input)
        assert.Nil(t, reorder.ReorderRunes(input), "test %d", i)
        assert.Equal(t, r.output, input, "test %d", i)

        b := []byte(string(r.input))
        assert.Nil(t, reorder.Reorder(b), "test %d bytes", i)
        assert.Equal(t, string(r.output), string(b), "test %d bytes", i)
    }
}

func TestReorderMaliciousInput(t *testing.T) {
    // Guards against a DoS from an unbounded run of combining marks: the
    // buffered reorder refuses rather than allocates without limit.
    dotAbove := string(rune(0x0307))
    dotBelow := string(rune(0x0323))

    var sb strings.Builder
    sb.WriteString("d")
    sb.WriteString(strings.Repeat(dotAbove, 100))
    sb.WriteString(dotBelow)
    inBytes := []byte(sb.String())
    inRunes := []rune(sb.String())

    quicktest.Completes(t, 1*time.Second, func() {
        assert.Equal(t, reorder.ErrMaxNonStarters, reorder.ReorderRunes(inRunes))

        inBytesCopy := append([]byte(nil), inBytes...)
        assert.Equal(t, reorder.ErrMaxNonStarters, reorder.Reorder(inBytesCopy))

        rdr := transform.NewReader(bytes.NewReader(inBytes), reorder.Transformer)
        _, err := io.ReadAll(rdr)
        assert.Equal(t, reorder.ErrMaxNonStarters, err)
    })
}

func TestTransformer(t *testing.T) {
    type row struct {
        input    []rune
        expected []rune
    }

    rows := []row{
        {[]rune("abc"), []rune("abc")},
        {[]rune("ab£d"), []rune("ab£d")},
        {[]rune{0x0064, 0x0307, 0x0323, 'a'}, []rune{0x0064, 0x0323, 0x0307, 'a'}},
        {[]rune{0x0064, 0x0307, 0x0323}, []rune{0x0064, 0x0323, 0x0307}},
    }

    for i, r := range rows {
        rdr := transform.NewReader(strings.NewReader(string(r.input)), reorder.Transformer)
        got, err := io.ReadAll(rdr)
        assert.Nil(t, err, "test %d", i)
        assert.Equal(t, string(r.expected), string(got), "test %d", i)
    }
}
