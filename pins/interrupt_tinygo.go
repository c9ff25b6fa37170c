//go:build tinygo

package pins

import "runtime/interrupt"

// disableInterrupts masks interrupts around a PFS update
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
