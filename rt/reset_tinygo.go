//go:build tinygo && cortexm

package rt

// #include <stdint.h>
import "C"

import "unsafe"

// Section bounds from the linker script
//
//go:extern _sbss
var _sbss [0]byte

//go:extern _ebss
var _ebss [0]byte

//go:extern _sdata
var _sdata [0]byte

//go:extern _edata
var _edata [0]byte

//go:extern _sidata
var _sidata [0]byte

//go:linkname initHeap runtime.initHeap
func initHeap()

//go:linkname initAll runtime.initAll
func initAll()

//go:linkname callMain main.main
func callMain()

// reset is the target of the reset vector. RAM is initialised before any
// package initialiser runs.
//
//export r4rt_reset
func reset() {
	data := span(unsafe.Pointer(&_sdata), unsafe.Pointer(&_edata))
	initRAM(
		span(unsafe.Pointer(&_sbss), unsafe.Pointer(&_ebss)),
		data,
		unsafe.Slice((*byte)(unsafe.Pointer(&_sidata)), len(data)),
	)
	initHeap()
	initAll()
	callMain()
	Halt("main returned")
}

//export r4rt_default_handler
func defaultHandler() {
	DefaultHandler()
}
