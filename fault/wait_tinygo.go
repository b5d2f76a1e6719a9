//go:build arm && tinygo

package fault

import "device/arm"

func wait() {
	arm.Asm("wfi")
}
