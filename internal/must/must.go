// Package must provides helper functions to assert program invariants.
// The program will panic if an invariant is violated.
package must

import "fmt"

// panicf panics with the printf-style message.
func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// NotBeNilf panics with the given message if v is nil.
func NotBeNilf(v interface{}, format string, args ...interface{}) {
	if v == nil {
		panicf("unexpected nil: %v", fmt.Sprintf(format, args...))
	}
}
