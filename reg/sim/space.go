// Package sim models the RA4M1 address space for host builds.
//
// A Space is byte-addressed little-endian memory with device models mapped
// over parts of it. Every load and store made through a Space is recorded
// in a trace so callers can check the exact order of register accesses.
package sim

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Op is the kind of a recorded access
type Op uint8

const (
	OpLoad Op = iota
	OpStore
)

func (o Op) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Access is one recorded register access
type Access struct {
	Op    Op
	Addr  uintptr
	Size  int // bytes
	Value uint32
}

func (a Access) String() string {
	return fmt.Sprintf("%s%d %#08x %#x", a.Op, a.Size*8, a.Addr, a.Value)
}

// Mem is raw little-endian memory. Unwritten bytes read as zero.
type Mem map[uintptr]byte

// Get reads size bytes at addr
func (m Mem) Get(addr uintptr, size int) uint32 {
	var v uint32
	for i := 0; i < size; i++ {
		v |= uint32(m[addr+uintptr(i)]) << (8 * i)
	}
	return v
}

// Put writes the low size bytes of v at addr
func (m Mem) Put(addr uintptr, size int, v uint32) {
	for i := 0; i < size; i++ {
		m[addr+uintptr(i)] = byte(v >> (8 * i))
	}
}

// Device is a peripheral model that claims part of the address space.
// Load and Store are called with the space locked and receive the raw
// memory so a model can keep register state there.
type Device interface {
	Contains(addr uintptr) bool
	Load(m Mem, addr uintptr, size int) uint32
	Store(m Mem, addr uintptr, size int, v uint32)
}

// resetter is implemented by devices that have a power-on state
type resetter interface {
	Reset()
}

// Space is a simulated address space. It is safe for concurrent use.
type Space struct {
	mu      sync.Mutex
	mem     Mem
	devices []Device
	trace   []Access
}

// NewSpace returns an empty address space with no devices mapped
func NewSpace() *Space {
	return &Space{mem: Mem{}}
}

// Map adds a device model. Devices mapped first win on overlap.
func (s *Space) Map(d Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devices = append(s.devices, d)
}

func (s *Space) device(addr uintptr) Device {
	i := slices.IndexFunc(s.devices, func(d Device) bool { return d.Contains(addr) })
	if i < 0 {
		return nil
	}
	return s.devices[i]
}

func checkSize(size int) {
	switch size {
	case 1, 2, 4:
	default:
		panic(fmt.Sprintf("sim: unsupported access size %d", size))
	}
}

// Load performs and records a read of size bytes at addr
func (s *Space) Load(addr uintptr, size int) uint32 {
	checkSize(size)
	s.mu.Lock()
	defer s.mu.Unlock()

	var v uint32
	if d := s.device(addr); d != nil {
		v = d.Load(s.mem, addr, size)
	} else {
		v = s.mem.Get(addr, size)
	}
	s.trace = append(s.trace, Access{Op: OpLoad, Addr: addr, Size: size, Value: v})
	return v
}

// Store performs and records a write of size bytes at addr
func (s *Space) Store(addr uintptr, size int, v uint32) {
	checkSize(size)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trace = append(s.trace, Access{Op: OpStore, Addr: addr, Size: size, Value: v})
	if d := s.device(addr); d != nil {
		d.Store(s.mem, addr, size, v)
		return
	}
	s.mem.Put(addr, size, v)
}

// Peek reads raw memory, bypassing devices and the trace
func (s *Space) Peek(addr uintptr, size int) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Get(addr, size)
}

// Poke writes raw memory, bypassing devices and the trace
func (s *Space) Poke(addr uintptr, size int, v uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem.Put(addr, size, v)
}

// Trace returns a copy of every access recorded since the last reset
func (s *Space) Trace() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.trace)
}

// Stores returns the recorded stores, in order
func (s *Space) Stores() []Access {
	return slices.DeleteFunc(s.Trace(), func(a Access) bool { return a.Op != OpStore })
}

// ClearTrace drops the recorded accesses and leaves memory untouched
func (s *Space) ClearTrace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = nil
}

// Reset clears memory and the trace and returns every device to its
// power-on state
func (s *Space) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem = Mem{}
	s.trace = nil
	for _, d := range s.devices {
		if r, ok := d.(resetter); ok {
			r.Reset()
		}
	}
}

// locked runs fn with the space locked
func (s *Space) locked(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
