package wikisort

import "fmt"

// assertf panics with a wikisort-prefixed message if cond is false. Sort's
// signature has no room for a returned error, so precondition violations
// surface as a panic instead, the same way an out-of-range slice index or
// a nil map write would.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("wikisort: "+format, args...))
	}
}
