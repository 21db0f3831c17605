package buffer_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/westwick/unorm/buffer"
)

func TestPushPopLen(t *testing.T) {
    var b buffer.Buffer[rune]
    assert.Equal(t, 0, b.Len())

    b.Push('a')
    b.Push('b')
    b.Push('c')
    assert.Equal(t, 3, b.Len())
    assert.Equal(t, []rune{'a', 'b', 'c'}, b.Slice())

    assert.Equal(t, rune('c'), b.Pop())
    assert.Equal(t, 2, b.Len())
}

func TestClearAndSetLen(t *testing.T) {
    var b buffer.Buffer[rune]
    b.Push('a')
    b.Push('b')
    b.SetLen(1)
    assert.Equal(t, []rune{'a'}, b.Slice())

    b.Clear()
    assert.Equal(t, 0, b.Len())
}

func TestReverse(t *testing.T) {
    var b buffer.Buffer[rune]
    for _, r := range "abcd" {
        b.Push(r)
    }
    b.Reverse()
    assert.Equal(t, []rune{'d', 'c', 'b', 'a'}, b.Slice())
}

func TestGetSetSwap(t *testing.T) {
    var b buffer.Buffer[rune]
    b.Push('a')
    b.Push('b')
    b.Set(0, 'x')
    assert.Equal(t, rune('x'), b.Get(0))
    b.Swap(0, 1)
    assert.Equal(t, []rune{'b', 'x'}, b.Slice())
}

func TestFullAndCap(t *testing.T) {
    var b buffer.Buffer[rune]
    assert.Equal(t, buffer.N, b.Cap())
    assert.False(t, b.Full())
    for i := 0; i < buffer.N; i++ {
        b.Push('a')
    }
    assert.True(t, b.Full())
}

func TestPushOnFullPanics(t *testing.T) {
    var b buffer.Buffer[rune]
    for i := 0; i < buffer.N; i++ {
        b.Push('a')
    }
    assert.Panics(t, func() {
        b.Push('a')
    })
}

func TestEqual(t *testing.T) {
    var a, b buffer.Buffer[rune]
    a.Push('x')
    a.Push('y')
    b.Push('x')
    b.Push('y')
    assert.True(t, buffer.Equal(&a, &b))

    b.Push('z')
    assert.False(t, buffer.Equal(&a, &b))
}
