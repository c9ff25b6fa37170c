//go:build !tinygo

package reg

import (
	"unsafe"

	"r4rt/reg/sim"
)

// board backs every register access made by a host build
var board = sim.NewBoard()

// Sim returns the simulated board that host builds read and write.
// Tests use it to inspect the access trace and drive device inputs.
func Sim() *sim.Board {
	return board
}

func load[T Width](addr uintptr) T {
	var v T
	return T(board.Load(addr, int(unsafe.Sizeof(v))))
}

func store[T Width](addr uintptr, v T) {
	board.Store(addr, int(unsafe.Sizeof(v)), uint32(v))
}
