package sim

// I/O port control registers
const (
	PortBase   uintptr = 0x40040000
	PortStride uintptr = 0x20
	Ports              = 10
)

// PCNTR1 returns the address of a port's direction/output data register
func PCNTR1(port uint32) uintptr {
	return PortBase + PortStride*uintptr(port)
}

// PCNTR2 returns the address of a port's input data register
func PCNTR2(port uint32) uintptr {
	return PCNTR1(port) + 4
}

// PortIO models the input side of the I/O ports. PCNTR2 reads return the
// level driven onto each pin from outside; a pin nobody drives reads high
// when its pull-up is enabled in PFS and low otherwise. PCNTR1 is plain
// memory and is not claimed.
type PortIO struct {
	driven [Ports]uint16
	levels [Ports]uint16
}

func (p *PortIO) Reset() {
	*p = PortIO{}
}

func (p *PortIO) Contains(addr uintptr) bool {
	if addr < PortBase || addr >= PortBase+PortStride*Ports {
		return false
	}
	return (addr-PortBase)%PortStride == 4
}

func (p *PortIO) Load(m Mem, addr uintptr, size int) uint32 {
	port := uint32((addr - PortBase) / PortStride)
	var v uint32
	for pin := uint32(0); pin < 16; pin++ {
		bit := uint16(1) << pin
		switch {
		case p.driven[port]&bit != 0:
			if p.levels[port]&bit != 0 {
				v |= uint32(bit)
			}
		case m.Get(PFS(port, pin), 4)&pfsPCR != 0:
			v |= uint32(bit)
		}
	}
	return v
}

// Store drops writes; PCNTR2 is read-only
func (p *PortIO) Store(Mem, uintptr, int, uint32) {}

func (p *PortIO) drive(port, pin uint32, high bool) {
	bit := uint16(1) << pin
	p.driven[port] |= bit
	if high {
		p.levels[port] |= bit
	} else {
		p.levels[port] &^= bit
	}
}

func (p *PortIO) release(port, pin uint32) {
	p.driven[port] &^= uint16(1) << pin
}
