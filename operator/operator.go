// Package operator implements builtin language operators, such as "=="
// (equals) or "in", as functions that can be passed to higher order
// functions, or used in place of a small inline loop.
package operator

// Zero returns the zero value for any type.
func Zero[T any]() T {
    var t T
    return t
}

// In returns true if x equals any of the following arguments.
func In[X comparable](x X, xs ... X) bool {
    for _, i := range xs {
        if x == i { return true }
    }
    return false
}
