// Package debug provides assertions that are checked when building with the
// debug tag and compile to nothing otherwise.
//
// Firmware using the DCC has no other way to observe broken invariants than
// the channel itself, so a failed assertion panics with an [Error] which the
// fault package reports before halting.
package debug

// Error is the panic value of a failed assertion.
type Error string

func (e Error) Error() string { return "assertion failed: " + string(e) }
