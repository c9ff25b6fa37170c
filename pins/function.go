package pins

import "r4rt/reg"

// Pin function select (PFS) and port control registers
const (
	pwprAddr   = 0x40040D03
	pfsBase    = 0x40040800
	portBase   = 0x40040000
	portStride = 0x20

	pwprB0WI  = 1 << 7 // PFSWE write disable
	pwprPFSWE = 1 << 6 // PFS write enable

	pfsPDR = 1 << 2 // direction: output
	pfsPCR = 1 << 4 // pull-up enable

	pfsOutput      = pfsPDR
	pfsInput       = 0
	pfsInputPullup = pfsPCR
)

// pwpr is the write-protect register guarding every PFS register. It is
// a byte-wide register.
var pwpr = reg.Register8(pwprAddr)

func pfs(port, pin uint32) reg.Register32 {
	return reg.Register32(pfsBase + 4*(16*port+pin))
}

// outputData is PCNTR1: direction in the low half, output data in the high half
func outputData(port uint32) reg.Register32 {
	return reg.Register32(portBase + portStride*port)
}

// inputData is PCNTR2: input data in the low half
func inputData(port uint32) reg.Register32 {
	return reg.Register32(portBase + portStride*port + 4)
}

func outputBit(pin uint32) uint32 { return 1 << (pin + 16) }
func inputBit(pin uint32) uint32  { return 1 << pin }

// unlockPFS clears B0WI, then sets PFSWE. PFSWE only accepts writes while
// B0WI is clear.
func unlockPFS() {
	pwpr.Set(0)
	pwpr.Set(pwprPFSWE)
}

// lockPFS clears PFSWE, then sets B0WI
func lockPFS() {
	pwpr.Set(0)
	pwpr.Set(pwprB0WI)
}

// writeFunction stores value into a pin's PFS register. The register bank
// is never left writable across an interrupt.
func writeFunction(port, pin, value uint32) {
	state := disableInterrupts()
	unlockPFS()
	pfs(port, pin).Set(value)
	lockPFS()
	restoreInterrupts(state)
}

func setFunction[P ID](value uint32) {
	port, pin := pinOf[P]()
	writeFunction(port, pin, value)
}
