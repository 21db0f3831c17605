// Package must implements small invariant-checking helpers that panic on
// violation. These are for programming errors, not recoverable conditions:
// nothing in this module should ever trigger one on valid input.
package must

import (
    "fmt"
)

// True panics if x is false. Use it to assert an invariant that should be
// impossible to violate except by a bug in this package.
func True(x bool) {
    if !x {
        panic(fmt.Errorf("must.True: invariant violated"))
    }
}

// Never panics unconditionally. Use it to mark a code path that should be
// unreachable.
func Never() {
    panic(fmt.Errorf("must.Never: unreachable code reached"))
}
