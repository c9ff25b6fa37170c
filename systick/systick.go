// Package systick drives the Cortex-M system timer.
//
// The timer counts down from the reload value to zero and sets COUNTFLAG
// each time it wraps. There is exactly one SysTick per core; Instance
// hands it out once.
package systick

import (
	"errors"
	"math/bits"
	"sync/atomic"
	"time"

	"r4rt/reg"
)

const (
	csrAddr   = 0xE000E010
	rvrAddr   = 0xE000E014
	cvrAddr   = 0xE000E018
	calibAddr = 0xE000E01C

	csrEnable    = 1 << 0
	csrCountFlag = 1 << 16

	// CounterMask covers the 24 bits of the reload and current value registers
	CounterMask = 0x00FFFFFF
)

var (
	csr   = reg.Register32(csrAddr)
	rvr   = reg.Register32(rvrAddr)
	cvr   = reg.Register32(cvrAddr)
	calib = reg.Register32(calibAddr)
)

var (
	ErrReloadOverflow = errors.New("systick: reload value does not fit in 24 bits")
	ErrPeriodTooShort = errors.New("systick: period is shorter than one tick")
	ErrNoCalibration  = errors.New("systick: no calibration value")
)

// SysTick is the handle on the system timer
type SysTick struct {
	enabled bool
}

var taken atomic.Bool

// Instance returns the timer the first time it is called and false after
// that
func Instance() (*SysTick, bool) {
	if !taken.CompareAndSwap(false, true) {
		return nil, false
	}
	return &SysTick{}, true
}

// TicksPer10ms returns the TENMS calibration value: the reload value for a
// 10 ms period, or zero if the chip does not provide one
func (s *SysTick) TicksPer10ms() uint32 {
	return calib.Get() & CounterMask
}

// Enable starts the counter
func (s *SysTick) Enable() {
	csr.Or(csrEnable)
	s.enabled = true
}

// Disable stops the counter
func (s *SysTick) Disable() {
	csr.And(^uint32(csrEnable))
	s.enabled = false
}

// Enabled reports whether Enable was called last. It does not read CSR,
// which would clear COUNTFLAG.
func (s *SysTick) Enabled() bool {
	return s.enabled
}

// Wrapped reports whether the counter reached zero since the last call
func (s *SysTick) Wrapped() bool {
	return csr.HasBits(csrCountFlag)
}

// CurrentValue returns the counter
func (s *SysTick) CurrentValue() uint32 {
	return cvr.Get() & CounterMask
}

// Reset clears the counter and COUNTFLAG; the next tick loads the reload value
func (s *SysTick) Reset() {
	cvr.Set(0)
}

// SetReload sets the value the counter restarts from. Only the low 24 bits
// are kept.
func (s *SysTick) SetReload(v uint32) {
	rvr.Set(v & CounterMask)
}

// Reload returns the reload value
func (s *SysTick) Reload() uint32 {
	return rvr.Get() & CounterMask
}

// ReloadFor computes the reload value that makes the counter wrap once
// every period, given the TENMS calibration value. The counter spends
// reload+1 ticks per period.
func ReloadFor(period time.Duration, ticksPer10ms uint32) (uint32, error) {
	if ticksPer10ms == 0 {
		return 0, ErrNoCalibration
	}
	if period <= 0 {
		return 0, ErrPeriodTooShort
	}
	// 128-bit product; a high word at or past the divisor means the
	// quotient cannot fit in 64 bits, let alone 24
	const tenms = uint64(10 * time.Millisecond)
	hi, lo := bits.Mul64(uint64(period), uint64(ticksPer10ms))
	if hi >= tenms {
		return 0, ErrReloadOverflow
	}
	ticks, _ := bits.Div64(hi, lo, tenms)
	if ticks == 0 {
		return 0, ErrPeriodTooShort
	}
	if ticks-1 > CounterMask {
		return 0, ErrReloadOverflow
	}
	return uint32(ticks - 1), nil
}
