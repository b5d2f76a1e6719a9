//go:build !arm

package fault

import "sync/atomic"

var spins atomic.Uint32

func wait() {
	spins.Add(1)
}
