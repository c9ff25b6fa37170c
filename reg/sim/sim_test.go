package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemLittleEndian(t *testing.T) {
	m := Mem{}
	m.Put(0x100, 4, 0x11223344)

	assert.Equal(t, uint32(0x44), m.Get(0x100, 1))
	assert.Equal(t, uint32(0x2233), m.Get(0x101, 2))
	assert.Equal(t, uint32(0x11223344), m.Get(0x100, 4))
	assert.Equal(t, uint32(0), m.Get(0x200, 4), "unwritten memory reads zero")
}

func TestSpaceTraceOrder(t *testing.T) {
	s := NewSpace()
	s.Store(0x2000_0000, 4, 7)
	v := s.Load(0x2000_0000, 4)
	s.Store(0x2000_0000, 2, 0xFFFF)

	require.Equal(t, uint32(7), v)
	assert.Equal(t, []Access{
		{Op: OpStore, Addr: 0x2000_0000, Size: 4, Value: 7},
		{Op: OpLoad, Addr: 0x2000_0000, Size: 4, Value: 7},
		{Op: OpStore, Addr: 0x2000_0000, Size: 2, Value: 0xFFFF},
	}, s.Trace())
	assert.Len(t, s.Stores(), 2)

	s.ClearTrace()
	assert.Empty(t, s.Trace())
	assert.Equal(t, uint32(0xFFFF), s.Peek(0x2000_0000, 4), "clearing the trace keeps memory")
}

func TestSpaceRejectsOddSizes(t *testing.T) {
	s := NewSpace()
	assert.Panics(t, func() { s.Load(0, 3) })
	assert.Panics(t, func() { s.Store(0, 8, 0) })
}

func TestWriteProtect(t *testing.T) {
	b := NewBoard()
	pfs := PFS(1, 2)

	b.Store(pfs, 4, 0x4)
	assert.Equal(t, uint32(0), b.Function(1, 2), "locked PFS write must be dropped")
	assert.Equal(t, 1, b.IgnoredPFSWrites())

	// PFSWE cannot be set while B0WI is set
	b.Store(PWPR, 1, pwprPFSWE)
	assert.False(t, b.PFSWritable())

	b.Store(PWPR, 1, 0)
	b.Store(PWPR, 1, pwprPFSWE)
	require.True(t, b.PFSWritable())

	b.Store(pfs, 4, 0x4)
	assert.Equal(t, uint32(0x4), b.Function(1, 2))

	b.Store(PWPR, 1, 0)
	b.Store(PWPR, 1, pwprB0WI)
	assert.False(t, b.PFSWritable())
	assert.Equal(t, uint32(pwprB0WI), b.Load(PWPR, 1))

	b.Reset()
	assert.Equal(t, 0, b.IgnoredPFSWrites())
	assert.Equal(t, uint32(0), b.Function(1, 2))
}

func TestPortInputLevels(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, uint32(0), b.Load(PCNTR2(1), 4)&(1<<3), "floating pin without pull-up reads low")

	b.Poke(PFS(1, 3), 4, pfsPCR)
	assert.NotZero(t, b.Load(PCNTR2(1), 4)&(1<<3), "pull-up reads high")

	b.Drive(1, 3, false)
	assert.Zero(t, b.Load(PCNTR2(1), 4)&(1<<3))

	b.Float(1, 3)
	assert.NotZero(t, b.Load(PCNTR2(1), 4)&(1<<3))

	b.Store(PCNTR2(1), 4, 0)
	assert.NotZero(t, b.Load(PCNTR2(1), 4)&(1<<3), "PCNTR2 is read-only")
}

func TestOutputHigh(t *testing.T) {
	b := NewBoard()
	b.Store(PCNTR1(1), 4, 1<<(2+16))
	assert.True(t, b.OutputHigh(1, 2))
	assert.False(t, b.OutputHigh(1, 3))
}

func TestSysTickModel(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, uint32(DefaultCalibration), b.Load(SysTickCALIB, 4))
	b.Store(SysTickCALIB, 4, 1)
	assert.Equal(t, uint32(DefaultCalibration), b.Load(SysTickCALIB, 4), "CALIB is read-only")

	b.Store(SysTickRVR, 4, 0xFF00_0003)
	assert.Equal(t, uint32(3), b.Load(SysTickRVR, 4), "RVR keeps 24 bits")

	b.Tick(10)
	assert.Equal(t, uint32(0), b.Load(SysTickCVR, 4), "disabled timer does not count")

	b.Store(SysTickCSR, 4, csrEnable)
	b.Tick(1) // reload
	assert.Equal(t, uint32(3), b.Load(SysTickCVR, 4))
	b.Tick(2)
	assert.Zero(t, b.Load(SysTickCSR, 4)&csrCountFlag)
	b.Tick(1)
	assert.NotZero(t, b.Load(SysTickCSR, 4)&csrCountFlag)
	assert.Zero(t, b.Load(SysTickCSR, 4)&csrCountFlag, "reading CSR clears COUNTFLAG")

	b.Tick(2)
	b.Store(SysTickCVR, 4, 0x1234)
	assert.Equal(t, uint32(0), b.Load(SysTickCVR, 4), "any CVR write clears the counter")
}
