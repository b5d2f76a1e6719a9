//go:build !debug

package debug

// Enabled guards assertions that are expensive to evaluate, i.e.
//
//	if debug.Enabled {
//		debug.Assert(expensive(), "...")
//	}
const Enabled = false

// Assert panics with an [Error] if b is false.
func Assert(b bool, message string) {}
