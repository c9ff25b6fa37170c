// Package reg provides volatile access to memory-mapped hardware registers.
//
// A Register is a handle on a fixed address. Every access is a single
// volatile load or store of the register width; the read-modify-write
// helpers perform exactly one load followed by exactly one store and are
// not atomic with respect to interrupts.
package reg

// Width is the set of register widths the primitives operate on
type Width interface {
	~uint8 | ~uint16 | ~uint32
}

// Register is a memory-mapped register of width T at a fixed address
type Register[T Width] uintptr

// Common register widths
type (
	Register8  = Register[uint8]
	Register16 = Register[uint16]
	Register32 = Register[uint32]
)

// Addr returns the address the register is mapped at
func (r Register[T]) Addr() uintptr {
	return uintptr(r)
}

// Get performs a volatile load of the register
func (r Register[T]) Get() T {
	return load[T](uintptr(r))
}

// Set performs a volatile store of v to the register
func (r Register[T]) Set(v T) {
	store(uintptr(r), v)
}

// Or sets the bits in mask: reg = reg | mask
func (r Register[T]) Or(mask T) {
	store(uintptr(r), load[T](uintptr(r))|mask)
}

// And keeps only the bits in mask: reg = reg & mask
func (r Register[T]) And(mask T) {
	store(uintptr(r), load[T](uintptr(r))&mask)
}

// Xor flips the bits in mask: reg = reg ^ mask
func (r Register[T]) Xor(mask T) {
	store(uintptr(r), load[T](uintptr(r))^mask)
}

// ClearBits clears the bits in mask. Same as And(^mask).
func (r Register[T]) ClearBits(mask T) {
	r.And(^mask)
}

// HasBits reports whether any bit in mask is set
func (r Register[T]) HasBits(mask T) bool {
	return r.Get()&mask != 0
}
