// Package fault reports unrecoverable errors to the debugger and halts the
// processor.
//
// Use it at the top of main and of every goroutine:
//
//	func main() {
//		defer fault.Recover()
//		...
//	}
//
// The host will then see a line like
//
//	panicked at 'Oops', /src/hello/main.go:4
//
// After the report the core stays in a low power loop until it is reset.
package fault

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/clktmr/dcc"
)

// Info describes a panic. Go call frames carry no column, so the location is
// only file and line.
type Info struct {
	Message string
	File    string // empty if unknown
	Line    int
}

func (i Info) String() string {
	if i.File == "" {
		return i.Message
	}
	return fmt.Sprintf("panicked at '%s', %s:%d", i.Message, i.File, i.Line)
}

var (
	word = dcc.Write
	idle = wait

	faulted atomic.Bool
)

// writer sends everything through word, one byte per word.
type writer struct{}

func (writer) Write(p []byte) (int, error) {
	for _, b := range p {
		word(uint32(b))
	}
	return len(p), nil
}

// writeString is the allocation free counterpart of writer for exception
// context.
//
//go:nosplit
func writeString(s string) {
	for i := 0; i < len(s); i++ {
		word(uint32(s[i]))
	}
}

// enter reports whether the caller is the first to fault.
//
//go:nosplit
func enter() bool {
	return !faulted.Swap(true)
}

// Report writes payload followed by a newline to the DCC and halts. Only the
// first call writes anything, a fault while reporting halts immediately.
func Report(payload any) {
	if enter() {
		fmt.Fprintln(writer{}, payload)
	}
	Halt()
}

// Recover reports the panic of the current goroutine, if any, and halts. It
// must be deferred directly:
//
//	defer fault.Recover()
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	info := Info{Message: fmt.Sprint(r)}
	info.File, info.Line = location()
	Report(info)
}

// location returns the source position which caused the current goroutine to
// panic.
func location() (file string, line int) {
	var pc [32]uintptr
	n := runtime.Callers(3, pc[:])
	frames := runtime.CallersFrames(pc[:n])

	panicking := false
	for {
		f, more := frames.Next()
		if isRuntime(f.Function) {
			panicking = panicking || f.Function == "runtime.gopanic"
		} else if panicking {
			return f.File, f.Line
		}
		if !more {
			return "", 0
		}
	}
}

func isRuntime(function string) bool {
	return strings.HasPrefix(function, "runtime.") ||
		strings.HasPrefix(function, "internal/runtime/")
}

// Halt never returns. Each iteration of its loop executes WFI, or an atomic
// add on targets without it.
//
//go:nosplit
func Halt() {
	for {
		idle()
	}
}
