package sim

// Board is a Space with the RA4M1 peripherals used by the runtime mapped
// in: the PFS write-protect block, the port input registers and SysTick.
type Board struct {
	*Space

	protect *WriteProtect
	ports   *PortIO
	systick *SysTick
}

// NewBoard returns a board in its power-on state
func NewBoard() *Board {
	b := &Board{
		Space:   NewSpace(),
		protect: NewWriteProtect(),
		ports:   &PortIO{},
		systick: NewSysTick(),
	}
	b.Map(b.protect)
	b.Map(b.ports)
	b.Map(b.systick)
	return b
}

// Tick advances SysTick by n clocks
func (b *Board) Tick(n int) {
	b.locked(func() { b.systick.tick(n) })
}

// SetCalibration replaces the value SysTick CALIB reads back
func (b *Board) SetCalibration(v uint32) {
	b.locked(func() { b.systick.calib = v })
}

// Drive forces the external level seen on a pin
func (b *Board) Drive(port, pin uint32, high bool) {
	b.locked(func() { b.ports.drive(port, pin, high) })
}

// Float stops driving a pin so it reads its pull-up state again
func (b *Board) Float(port, pin uint32) {
	b.locked(func() { b.ports.release(port, pin) })
}

// OutputHigh reports whether the output data bit of a pin is set
func (b *Board) OutputHigh(port, pin uint32) bool {
	return b.Peek(PCNTR1(port), 4)&(1<<(pin+16)) != 0
}

// Function returns the raw PFS value of a pin
func (b *Board) Function(port, pin uint32) uint32 {
	return b.Peek(PFS(port, pin), 4)
}

// PFSWritable reports whether PFS writes are currently accepted
func (b *Board) PFSWritable() bool {
	var ok bool
	b.locked(func() { ok = b.protect.pwpr&pwprPFSWE != 0 })
	return ok
}

// IgnoredPFSWrites returns how many PFS writes were dropped while locked
func (b *Board) IgnoredPFSWrites() int {
	var n int
	b.locked(func() { n = b.protect.ignored })
	return n
}
