//go:build dccnop

package dcc

// Write is a no-op, because the package was built with the dccnop tag.
//
//go:nosplit
func Write(word uint32) {}
