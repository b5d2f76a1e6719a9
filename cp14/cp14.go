// Package cp14 describes the Debug Communication Channel registers of the ARM
// debug coprocessor (cp14) and implements the handshake for sending a word to
// the host.
//
// The registers are accessed with
//
//	MRC p14, 0, Rt, c0, c1, 0 // read DBGDSCR
//	MCR p14, 0, Rt, c0, c5, 0 // write DBGDTRTX
//
// Further reading: ARM Architecture Reference Manual ARMv7-A and ARMv7-R
// edition, C11.11 "Debug Communications Channel".
package cp14

// Bits of the Debug Status and Control Register (DBGDSCR) relevant to the DCC.
const (
	TXFull uint32 = 1 << 29 // DBGDTRTX not yet read by the debugger
	RXFull uint32 = 1 << 30 // DBGDTRRX holds data from the debugger
)

// Port is a DCC register pair.
type Port interface {
	// Status returns the current value of DBGDSCR.
	Status() uint32
	// Transmit stores word in DBGDTRTX. Hardware sets TXFull as a side
	// effect.
	Transmit(word uint32)
}

// Pending reports whether status indicates a word still waiting for the
// debugger.
//
//go:nosplit
func Pending(status uint32) bool {
	return status&TXFull != 0
}

// Transfer writes word to p as soon as the previous word was consumed. It
// spins on TXFull without backoff and blocks forever if nobody drains the
// channel.
//
//go:nosplit
func Transfer[P Port](p P, word uint32) {
	for Pending(p.Status()) {
		// wait
	}
	p.Transmit(word)
}
