//go:build arm && tinygo && !dccnop

package dcc

import (
	"device/arm"

	"github.com/clktmr/dcc/cp14"
)

type coprocessor struct{}

func (coprocessor) Status() uint32 {
	return uint32(arm.AsmFull("mrc p14, 0, {}, c0, c1, 0", nil))
}

func (coprocessor) Transmit(word uint32) {
	arm.AsmFull("mcr p14, 0, {word}, c0, c5, 0", map[string]interface{}{
		"word": word,
	})
}

// Write sends a single word to the DCC. It blocks until the debugger read the
// previous word.
//
//go:inline
func Write(word uint32) {
	cp14.Transfer(coprocessor{}, word)
}
