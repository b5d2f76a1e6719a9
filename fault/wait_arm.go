//go:build arm && !tinygo

package fault

// wait executes WFI. Implemented in wait_arm.s.
//
//go:noescape
func wait()
