//go:build arm && !tinygo && !dccnop

package dcc

// Write sends a single word to the DCC. It blocks until the debugger read the
// previous word.
//
//go:nosplit
func Write(word uint32) {
	dccWrite(word)
}

// dccWrite polls DBGDSCR until DBGDTRTX is empty and stores word in it.
// Implemented in write_arm.s.
//
//go:noescape
func dccWrite(word uint32)
