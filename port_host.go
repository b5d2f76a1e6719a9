//go:build !arm

package dcc

import (
	"os"

	"github.com/clktmr/dcc/cp14"
)

// port stands in for the coprocessor registers on hosts.
var port cp14.Port = stderrPort{}

// stderrPort is a channel with an always attached debugger which renders the
// stream to stderr.
type stderrPort struct{}

func (stderrPort) Status() uint32 { return 0 }

func (stderrPort) Transmit(word uint32) {
	os.Stderr.Write([]byte{byte(word)})
}
