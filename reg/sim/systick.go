package sim

// SysTick registers
const (
	SysTickCSR   uintptr = 0xE000E010
	SysTickRVR   uintptr = 0xE000E014
	SysTickCVR   uintptr = 0xE000E018
	SysTickCALIB uintptr = 0xE000E01C

	// DefaultCalibration is TENMS for a 48 MHz core clock
	DefaultCalibration = 480000

	csrEnable    = 1 << 0
	csrWritable  = 0x7
	csrCountFlag = 1 << 16
	counterMask  = 0x00FFFFFF
)

// SysTick models the Cortex-M system timer. Reading CSR clears COUNTFLAG,
// any write to CVR clears the counter and COUNTFLAG, and CALIB ignores
// writes. The counter only moves when Tick is called.
type SysTick struct {
	csr, rvr, cvr, calib uint32
}

// NewSysTick returns a disabled timer with the default calibration value
func NewSysTick() *SysTick {
	s := &SysTick{}
	s.Reset()
	return s
}

func (s *SysTick) Reset() {
	*s = SysTick{calib: DefaultCalibration}
}

func (s *SysTick) Contains(addr uintptr) bool {
	return addr >= SysTickCSR && addr < SysTickCALIB+4
}

func (s *SysTick) Load(_ Mem, addr uintptr, _ int) uint32 {
	switch addr {
	case SysTickCSR:
		v := s.csr
		s.csr &^= csrCountFlag
		return v
	case SysTickRVR:
		return s.rvr
	case SysTickCVR:
		return s.cvr
	case SysTickCALIB:
		return s.calib
	}
	return 0
}

func (s *SysTick) Store(_ Mem, addr uintptr, _ int, v uint32) {
	switch addr {
	case SysTickCSR:
		s.csr = s.csr&csrCountFlag | v&csrWritable
	case SysTickRVR:
		s.rvr = v & counterMask
	case SysTickCVR:
		s.cvr = 0
		s.csr &^= csrCountFlag
	}
}

// tick advances the counter by n clocks. A counter at zero reloads from
// RVR on the next clock; reaching zero sets COUNTFLAG.
func (s *SysTick) tick(n int) {
	for i := 0; i < n; i++ {
		if s.csr&csrEnable == 0 {
			return
		}
		if s.cvr == 0 {
			s.cvr = s.rvr
			continue
		}
		s.cvr--
		if s.cvr == 0 {
			s.csr |= csrCountFlag
		}
	}
}
