//go:build tamago && arm && linkprintk && !dccnop

package dcc

import _ "unsafe"

// printk replaces the board's console, so print, println and the runtime's
// panic output are sent to the debugger. Board packages only leave
// runtime.printk undefined when built with the linkprintk tag.
//
//go:linkname printk runtime.printk
func printk(c byte) {
	Write(uint32(c))
}
