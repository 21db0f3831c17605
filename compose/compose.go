// Package compose implements the canonical composition algorithm (D117):
// the in-place pass that recombines a starter with the combining marks
// that follow it into a single precomposed code point, wherever Unicode
// defines one, subject to the "blocked" rule (D115) that stops a mark
// from reaching back across an intervening mark of equal or higher combining
// class.
package compose

import (
    "github.com/westwick/unorm/buffer"
    "github.com/westwick/unorm/hangul"
    "github.com/westwick/unorm/must"
    "github.com/westwick/unorm/ucd"
)

// Compose performs the canonical composition pass over buf in place,
// shrinking it to the composed length. buf must already be canonically
// ordered (see [github.com/westwick/unorm/reorder]).
func Compose(buf *buffer.Buffer[rune]) {
    const noStarter = -1

    lastStarterIdx := noStarter
    var lastCCC int = -1
    pos := 0

    n := buf.Len()
    for i := 0; i < n; i++ {
        c := buf.Get(i)

        // Hangul shortcut: only applies when the starter is immediately
        // adjacent, i.e. no combining marks have been written between it
        // and the write cursor.
        if lastStarterIdx != noStarter && lastStarterIdx+1 == pos {
            if composed, ok := hangul.Compose(buf.Get(lastStarterIdx), c); ok {
                buf.Set(lastStarterIdx, composed)
                lastCCC = 0
                continue
            }
        }

        ccc := int(ucd.Combining(c))

        if lastStarterIdx == noStarter {
            if ccc == 0 {
                lastStarterIdx = pos
            }
            buf.Set(pos, c)
            pos++
            lastCCC = ccc
            continue
        }

        // D115: blocked if an intervening non-starter has CCC >= this one.
        if lastCCC >= ccc && lastCCC > 0 {
            buf.Set(pos, c)
            pos++
            lastCCC = ccc
            continue
        }

        if composed, ok := ucd.Composition(buf.Get(lastStarterIdx), c); ok {
            buf.Set(lastStarterIdx, composed)
            must.True(ucd.Combining(composed) == 0)
            lastCCC = 0
            continue
        }

        if ccc == 0 {
            lastStarterIdx = pos
            buf.Set(pos, c)
            pos++
            lastCCC = 0
            continue
        }

        buf.Set(pos, c)
        pos++
        lastCCC = ccc
    }

    buf.SetLen(pos)
}
