//go:build tinygo

package reg

import (
	"runtime/volatile"
	"unsafe"
)

// load reads the register at addr with a single access of T's width
func load[T Width](addr uintptr) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		return T(volatile.LoadUint8((*uint8)(unsafe.Pointer(addr))))
	case 2:
		return T(volatile.LoadUint16((*uint16)(unsafe.Pointer(addr))))
	default:
		return T(volatile.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	}
}

// store writes v to the register at addr with a single access of T's width
func store[T Width](addr uintptr, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		volatile.StoreUint8((*uint8)(unsafe.Pointer(addr)), uint8(v))
	case 2:
		volatile.StoreUint16((*uint16)(unsafe.Pointer(addr)), uint16(v))
	default:
		volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), uint32(v))
	}
}
