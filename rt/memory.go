package rt

import "unsafe"

// span returns the bytes in [start, end). An empty or inverted range
// gives an empty slice.
func span(start, end unsafe.Pointer) []byte {
	if uintptr(end) <= uintptr(start) {
		return nil
	}
	return unsafe.Slice((*byte)(start), uintptr(end)-uintptr(start))
}

// zeroFill clears every byte of b. The loop is written out so no library
// code runs before RAM is initialised.
func zeroFill(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// copyData copies the load image of .data into RAM. The shorter of the
// two lengths wins.
func copyData(dst, src []byte) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
}

// initRAM zeroes .bss and then copies .data. Both must finish before any
// Go code that touches a package variable runs.
func initRAM(bss, data, image []byte) {
	zeroFill(bss)
	copyData(data, image)
}
