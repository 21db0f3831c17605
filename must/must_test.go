package must_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/westwick/unorm/must"
)

func TestTrue(t *testing.T) {
    assert.NotPanics(t, func() {
        must.True(1 + 1 == 2)
    })
    assert.Panics(t, func() {
        must.True(1 + 1 == 3)
    })
}

func TestNever(t *testing.T) {
    assert.Panics(t, func() {
        must.Never()
    })
}
