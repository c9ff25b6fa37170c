//go:build !tinygo

package pins

// irqState stands in for the saved PRIMASK on host builds
type irqState uint32

// disableInterrupts only tracks nesting on host builds
func disableInterrupts() irqState {
	masked++
	return irqState(masked - 1)
}

func restoreInterrupts(state irqState) {
	masked = uint32(state)
}

var masked uint32
