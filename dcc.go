// Package dcc writes to the Debug Communication Channel (DCC) of ARMv7-A/R
// cores, which lets a hardware debugger capture output of bare-metal firmware
// without a UART.
//
// Every byte is sent as a separate word and each word blocks until the
// debugger consumed the previous one. If no debugger drains the channel, the
// first write after the register filled up blocks forever. Build with the
// dccnop tag to turn all writes into no-ops on targets where the channel is
// unused.
//
// The transport is selected at build time:
//
//	dccnop                    Write does nothing
//	arm && tinygo             inline coprocessor access
//	arm && !tinygo            assembly routine dccWrite
//	!arm                      simulated channel, output goes to stderr
//
// On TamaGo, building with the linkprintk tag makes this package provide
// runtime.printk, so print, println and panics go to the DCC instead of the
// board's UART:
//
//	GOOS=tamago GOARCH=arm go build -tags linkprintk
//
// There is no locking. Firmware writing from multiple goroutines must
// serialize calls itself.
//
// On the host side, the debugger must forward the channel to a file or
// terminal, e.g. with the Xilinx System Debugger:
//
//	xsdb% set f [open dcc.log w]
//	xsdb% readjtaguart -start -handle $f
package dcc

import "fmt"

// WriteAll writes each byte of p as a zero-extended word, in order.
//
//go:nosplit
func WriteAll(p []byte) {
	for _, b := range p {
		Write(uint32(b))
	}
}

// WriteString writes the bytes of s. No terminator or length is added.
//
//go:nosplit
func WriteString(s string) {
	for i := 0; i < len(s); i++ {
		Write(uint32(s[i]))
	}
}

// Writer forwards everything written to it to the DCC. Writes never fail.
type Writer struct{}

func (Writer) Write(p []byte) (int, error) {
	WriteAll(p)
	return len(p), nil
}

func (Writer) WriteString(s string) (int, error) {
	WriteString(s)
	return len(s), nil
}

// Print formats using the default formats for its operands and writes to the
// DCC.
func Print(a ...any) {
	fmt.Fprint(Writer{}, a...)
}

// Printf formats according to a format specifier and writes to the DCC.
func Printf(format string, a ...any) {
	fmt.Fprintf(Writer{}, format, a...)
}

// Println is like [Print] but always adds spaces between operands and
// appends a newline. Without operands it writes a single newline.
func Println(a ...any) {
	fmt.Fprintln(Writer{}, a...)
}

// SystemWrite has the signature of embedded/rtos.SystemWriter. On runtimes
// with a pluggable system writer, pass it to rtos.SetSystemWriter to send
// panics and the output of the print builtins to the DCC.
//
//go:nosplit
func SystemWrite(fd int, p []byte) int {
	WriteAll(p)
	return len(p)
}
