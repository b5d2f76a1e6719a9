// Package sim simulates the DCC register pair of an ARM core with an attached
// debugger. It allows running the transport and everything built on top of
// it on the host.
package sim

import (
	"runtime"
	"sync"

	"github.com/clktmr/dcc/cp14"
	"github.com/clktmr/dcc/debug"
)

// Port implements [cp14.Port]. The zero value is a channel whose debugger
// never reads, i.e. every word after the first one blocks.
type Port struct {
	// AutoDrain lets the simulated debugger consume every word right after
	// it was transmitted.
	AutoDrain bool

	// MaxPolls, if not zero, limits the number of consecutive polls that
	// read TXFull. The polling goroutine exits via [runtime.Goexit] when
	// the limit is reached.
	MaxPolls int

	mu        sync.Mutex
	words     []uint32
	polls     int
	busyPolls int
	overruns  int
	full      bool
	held      bool
}

// New returns a Port whose debugger drains every word immediately.
func New() *Port {
	return &Port{AutoDrain: true}
}

func (p *Port) Status() uint32 {
	p.mu.Lock()
	p.polls++
	if !p.full && !p.held {
		p.busyPolls = 0
		p.mu.Unlock()
		return 0
	}
	p.busyPolls++
	stuck := p.MaxPolls > 0 && p.busyPolls >= p.MaxPolls
	p.mu.Unlock()

	if stuck {
		runtime.Goexit()
	}
	return cp14.TXFull
}

func (p *Port) Transmit(word uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.full || p.held {
		p.overruns++
		debug.Assert(false, "sim: DBGDTRTX overwritten while full")
	}
	p.words = append(p.words, word)
	p.full = !p.AutoDrain
}

// Hold keeps TXFull set regardless of whether the debugger read the last word,
// simulating a channel that is never drained.
func (p *Port) Hold(busy bool) {
	p.mu.Lock()
	p.held = busy
	p.mu.Unlock()
}

// Drain reads DBGDTRTX on behalf of the debugger. It returns false if no word
// was pending.
func (p *Port) Drain() (word uint32, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.full || p.held {
		return 0, false
	}
	p.full = false
	return p.words[len(p.words)-1], true
}

// Words returns a copy of all words accepted so far.
func (p *Port) Words() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint32(nil), p.words...)
}

// Bytes returns the low byte of every accepted word.
func (p *Port) Bytes() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	b := make([]byte, len(p.words))
	for i, w := range p.words {
		b[i] = byte(w)
	}
	return b
}

// Polls returns the number of status register reads.
func (p *Port) Polls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.polls
}

// Overruns returns the number of words transmitted while TXFull was set.
func (p *Port) Overruns() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overruns
}
