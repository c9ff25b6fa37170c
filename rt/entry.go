package rt

import "sync/atomic"

// Never is the result of a function that does not return. An entry
// function ends by looping forever or with return Halt(...); a Never
// built any other way still lands in Halt when Entry regains control.
type Never struct {
	_ [0]func()
}

var entered atomic.Bool

// hang parks the core. Host tests replace it so a halt can be observed.
var hang = spin

func spin() {
	for {
	}
}

// Entry runs the program's entry function. It must be called once, from
// main. If fn comes back anyway, or Entry is called a second time, the
// core halts.
func Entry(fn func() Never) {
	if !entered.CompareAndSwap(false, true) {
		Halt("entry called twice")
	}
	fn()
	Halt("entry function returned")
}

// Halt reports reason to the debug writer and stops the core. It does not
// allocate, so it is safe in exception context and before the heap is up.
func Halt(reason string) Never {
	debugPrint("halt: ")
	debugPrint(reason)
	debugPrint("\n")
	hang()
	for {
	}
}

// DefaultHandler is installed in every exception and interrupt slot that
// has no handler of its own
func DefaultHandler() {
	Halt("unhandled exception")
}
