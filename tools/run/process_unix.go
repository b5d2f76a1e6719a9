//go:build unix

package run

import (
	"os"
	"syscall"
)

// processGroupKill interrupts the debugger and everything it started. The
// pseudo terminal made it a session leader, so its pid is the group id.
func processGroupKill(p *os.Process) error {
	return syscall.Kill(-p.Pid, syscall.SIGINT)
}
