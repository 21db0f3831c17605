// Package quicktest provides small helpers for writing time-bounded tests,
// used to guard against accidental quadratic blowups on adversarial input
// (for example, a long run of combining marks fed to the reorder pass).
package quicktest

import (
    "testing"
    "time"
)

// Completes fails t if fn does not return within d. fn is run in its own
// goroutine; if it times out, that goroutine is abandoned (there is no way
// to cancel a plain function call), so fn should itself be cheap to leak.
func Completes(t *testing.T, d time.Duration, fn func()) {
    t.Helper()

    done := make(chan struct{})
    go func() {
        fn()
        close(done)
    }()

    select {
    case <-done:
    case <-time.After(d):
        t.Fatalf("did not complete within %s", d)
    }
}
