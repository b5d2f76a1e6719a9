//go:build !arm && !dccnop

package dcc

import "github.com/clktmr/dcc/cp14"

// Write sends a single word to the simulated DCC. It blocks until the
// previous word was consumed.
func Write(word uint32) {
	cp14.Transfer(port, word)
}
