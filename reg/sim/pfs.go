package sim

// Pin function select block and its write-protect register
const (
	PWPR    uintptr = 0x40040D03
	PFSBase uintptr = 0x40040800
	PFSSize uintptr = Ports * 16 * 4

	pwprB0WI  = 1 << 7
	pwprPFSWE = 1 << 6

	pfsPCR = 1 << 4
)

// PFS returns the address of the function select register for a pin
func PFS(port, pin uint32) uintptr {
	return PFSBase + 4*uintptr(16*port+pin)
}

// WriteProtect models PWPR and the PFS registers it guards.
//
// PFSWE may only change while B0WI is clear. PFS writes made while PFSWE
// is clear are dropped and counted.
type WriteProtect struct {
	pwpr    uint8
	ignored int
}

// NewWriteProtect returns the model in its reset state: B0WI set, PFSWE clear
func NewWriteProtect() *WriteProtect {
	w := &WriteProtect{}
	w.Reset()
	return w
}

func (w *WriteProtect) Reset() {
	w.pwpr = pwprB0WI
	w.ignored = 0
}

func (w *WriteProtect) Contains(addr uintptr) bool {
	return addr == PWPR || (addr >= PFSBase && addr < PFSBase+PFSSize)
}

func (w *WriteProtect) Load(m Mem, addr uintptr, size int) uint32 {
	if addr == PWPR {
		return uint32(w.pwpr)
	}
	return m.Get(addr, size)
}

func (w *WriteProtect) Store(m Mem, addr uintptr, size int, v uint32) {
	if addr == PWPR {
		b := uint8(v)
		if w.pwpr&pwprB0WI == 0 {
			w.pwpr = b & (pwprB0WI | pwprPFSWE)
		} else {
			w.pwpr = w.pwpr&^pwprB0WI | b&pwprB0WI
		}
		return
	}
	if w.pwpr&pwprPFSWE == 0 {
		w.ignored++
		return
	}
	m.Put(addr, size, v)
}
